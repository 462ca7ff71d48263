package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dto"
)

func TestAdminLoginAndToken(t *testing.T) {
	setupDB(t)
	svc := NewAdminService()

	_, err := svc.Create(context.Background(), dto.CreateAdminReq{Username: "admin", Password: "p@ssw0rd!", Role: "admin"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.AdminLoginReq{Username: "admin", Password: "p@ssw0rd!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Role)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAdminLoginUnconfiguredExpiry(t *testing.T) {
	setupDB(t)
	svc := NewAdminService()

	old := config.C.Security.JWTExpireHours
	config.C.Security.JWTExpireHours = 0
	defer func() { config.C.Security.JWTExpireHours = old }()

	_, err := svc.Create(context.Background(), dto.CreateAdminReq{Username: "admin", Password: "p@ssw0rd!"})
	require.NoError(t, err)

	// 配置缺省时令牌仍按 24 小时签发，不会立刻过期
	resp, err := svc.Login(context.Background(), dto.AdminLoginReq{Username: "admin", Password: "p@ssw0rd!"})
	require.NoError(t, err)
	assert.Greater(t, resp.ExpireAt, time.Now().Unix())

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAdminLoginRejects(t *testing.T) {
	setupDB(t)
	svc := NewAdminService()

	_, err := svc.Create(context.Background(), dto.CreateAdminReq{Username: "admin", Password: "p@ssw0rd!"})
	require.NoError(t, err)

	// 用户不存在与密码错误返回同一错误码
	_, err = svc.Login(context.Background(), dto.AdminLoginReq{Username: "ghost", Password: "p@ssw0rd!"})
	assert.Equal(t, constant.CodeAdminInvalidCredential, constant.CodeOf(err))
	_, err = svc.Login(context.Background(), dto.AdminLoginReq{Username: "admin", Password: "wrong"})
	assert.Equal(t, constant.CodeAdminInvalidCredential, constant.CodeOf(err))
}

func TestAdminDuplicateUsername(t *testing.T) {
	setupDB(t)
	svc := NewAdminService()

	_, err := svc.Create(context.Background(), dto.CreateAdminReq{Username: "admin", Password: "p@ssw0rd!"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), dto.CreateAdminReq{Username: "admin", Password: "another-pw"})
	assert.Equal(t, constant.CodeAdminDuplicate, constant.CodeOf(err))
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupDB(t)
	svc := NewAdminService()

	_, err := svc.ParseToken("not-a-jwt")
	assert.Equal(t, constant.CodeAdminUnauthorized, constant.CodeOf(err))
}
