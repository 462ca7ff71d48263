package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dao"
	"virtual-payment-api/internal/dto"
	"virtual-payment-api/internal/model"
)

type AdminService struct {
	adminDao *dao.AdminDao
}

func NewAdminService() *AdminService {
	return &AdminService{adminDao: dao.NewAdminDao()}
}

// AdminClaims 管理后台令牌声明
type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Login 校验口令并签发 HS256 令牌。用户不存在与密码错误返回同一错误码。
func (s *AdminService) Login(ctx context.Context, req dto.AdminLoginReq) (*dto.AdminLoginResp, error) {
	u, err := s.adminDao.GetByUsername(req.Username)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, constant.NewError(constant.CodeAdminInvalidCredential)
		}
		return nil, err
	}
	if u.Status != 1 {
		return nil, constant.NewError(constant.CodeAdminInvalidCredential)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, constant.NewError(constant.CodeAdminInvalidCredential)
	}

	hours := config.C.Security.JWTExpireHours
	if hours <= 0 {
		hours = 24
	}
	expireAt := time.Now().Add(time.Duration(hours) * time.Hour)
	claims := AdminClaims{
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expireAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.C.Security.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResp{
		Token:    token,
		Username: u.Username,
		Role:     u.Role,
		ExpireAt: expireAt.Unix(),
	}, nil
}

// ParseToken 解析并校验令牌，失效一律按未授权处理
func (s *AdminService) ParseToken(tokenStr string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constant.NewError(constant.CodeAdminUnauthorized)
		}
		return []byte(config.C.Security.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, constant.NewError(constant.CodeAdminUnauthorized)
	}
	return claims, nil
}

func (s *AdminService) Create(ctx context.Context, req dto.CreateAdminReq) (*dto.AdminVO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = "operator"
	}
	u := &model.AdminUser{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       1,
	}
	if err := s.adminDao.Insert(u); err != nil {
		if dao.IsDuplicate(err) {
			return nil, constant.NewError(constant.CodeAdminDuplicate)
		}
		return nil, err
	}
	return adminVO(u), nil
}

func (s *AdminService) List(ctx context.Context, page dto.PageQuery) (*dto.PagedResult, error) {
	page.Normalize()
	rows, total, err := s.adminDao.List((page.Page-1)*page.PageSize, page.PageSize)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.AdminVO, 0, len(rows))
	for i := range rows {
		vos = append(vos, *adminVO(&rows[i]))
	}
	res := dto.NewPagedResult(total, page.Page, page.PageSize, vos)
	return &res, nil
}

func adminVO(u *model.AdminUser) *dto.AdminVO {
	return &dto.AdminVO{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		Status:     u.Status,
		CreateTime: u.CreateTime,
	}
}
