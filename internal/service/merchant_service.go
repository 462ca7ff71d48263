package service

import (
	"context"
	"time"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dao"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/idgen"
	"virtual-payment-api/internal/model"
	"virtual-payment-api/internal/utils"
)

type MerchantService struct {
	merchantDao *dao.MerchantDao
}

func NewMerchantService() *MerchantService {
	return &MerchantService{merchantDao: dao.NewMerchantDao()}
}

// Create 注册商户并生成密钥对。私钥只在创建响应里出现一次，
// 之后任何接口都不再返回。
func (s *MerchantService) Create(ctx context.Context, req dto.CreateMerchantReq) (map[string]interface{}, error) {
	priv, pub, err := utils.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	m := &model.Merchant{
		MerchantID:   idgen.MerchantID(),
		MerchantName: req.MerchantName,
		PrivateKey:   priv,
		PublicKey:    pub,
	}
	if err := s.merchantDao.Insert(m); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"merchant_id":   m.MerchantID,
		"merchant_name": m.MerchantName,
		"private_key":   priv,
		"public_key":    pub,
		"create_time":   m.CreateTime,
	}, nil
}

func (s *MerchantService) Get(ctx context.Context, merchantID string) (*dto.MerchantVO, error) {
	m, err := s.merchantDao.GetByMerchantID(merchantID)
	if err != nil {
		return nil, notFoundOr(err, constant.CodeMerchantNotFound)
	}
	return merchantVO(m), nil
}

func (s *MerchantService) Update(ctx context.Context, merchantID string, req dto.UpdateMerchantReq) (*dto.MerchantVO, error) {
	hit, err := s.merchantDao.UpdateFields(merchantID, map[string]interface{}{
		"merchant_name": req.MerchantName,
	})
	if err != nil {
		return nil, err
	}
	if hit == 0 {
		return nil, constant.NewError(constant.CodeMerchantNotFound)
	}
	return s.Get(ctx, merchantID)
}

// RegenerateKeys 轮换密钥，旧私钥立即失效；新私钥仅在本次响应返回
func (s *MerchantService) RegenerateKeys(ctx context.Context, merchantID string) (map[string]interface{}, error) {
	priv, pub, err := utils.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	hit, err := s.merchantDao.UpdateFields(merchantID, map[string]interface{}{
		"private_key": priv,
		"public_key":  pub,
	})
	if err != nil {
		return nil, err
	}
	if hit == 0 {
		return nil, constant.NewError(constant.CodeMerchantNotFound)
	}
	return map[string]interface{}{
		"merchant_id": merchantID,
		"private_key": priv,
		"public_key":  pub,
		"update_time": time.Now(),
	}, nil
}

func (s *MerchantService) Search(ctx context.Context, req dto.SearchMerchantReq) (*dto.PagedResult, error) {
	req.Normalize()
	rows, total, err := s.merchantDao.Search(req.MerchantName, (req.Page-1)*req.PageSize, req.PageSize)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.MerchantVO, 0, len(rows))
	for i := range rows {
		vos = append(vos, *merchantVO(&rows[i]))
	}
	res := dto.NewPagedResult(total, req.Page, req.PageSize, vos)
	return &res, nil
}

func merchantVO(m *model.Merchant) *dto.MerchantVO {
	return &dto.MerchantVO{
		ID:           m.ID,
		MerchantID:   m.MerchantID,
		MerchantName: m.MerchantName,
		PublicKey:    m.PublicKey,
		CreateTime:   m.CreateTime,
	}
}
