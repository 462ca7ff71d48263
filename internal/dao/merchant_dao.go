package dao

import (
	"errors"

	"gorm.io/gorm"

	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/model"
)

type MerchantDao struct{}

func NewMerchantDao() *MerchantDao { return &MerchantDao{} }

func (d *MerchantDao) Insert(m *model.Merchant) error {
	return dal.MainDB.Create(m).Error
}

func (d *MerchantDao) GetByMerchantID(mid string) (*model.Merchant, error) {
	var m model.Merchant
	if err := dal.MainDB.Where("merchant_id = ?", mid).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateFields 按 merchant_id 更新给定列，返回命中行数
func (d *MerchantDao) UpdateFields(mid string, fields map[string]interface{}) (int64, error) {
	res := dal.MainDB.Model(&model.Merchant{}).Where("merchant_id = ?", mid).Updates(fields)
	return res.RowsAffected, res.Error
}

// Search 按名称模糊搜索，分页，按创建时间倒序
func (d *MerchantDao) Search(name string, offset, limit int) ([]model.Merchant, int64, error) {
	q := dal.MainDB.Model(&model.Merchant{})
	if name != "" {
		q = q.Where("merchant_name LIKE ?", "%"+name+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Merchant
	err := q.Order("create_time DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

// IsNotFound 屏蔽 gorm 细节给上层
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate 唯一键冲突（TranslateError 开启后各方言统一）
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
