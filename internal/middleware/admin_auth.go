package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/service"
	"virtual-payment-api/internal/utils"
)

// AdminAuth 校验 Bearer 令牌，成功后把管理员用户名放进上下文
func AdminAuth(adminSvc *service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.Fail(c, constant.CodeAdminUnauthorized)
			return
		}
		claims, err := adminSvc.ParseToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			utils.Fail(c, constant.CodeAdminUnauthorized)
			return
		}
		c.Set("admin_user", claims.Username)
		c.Next()
	}
}
