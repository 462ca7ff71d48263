package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/logger"
	"virtual-payment-api/internal/utils"
)

// Recover 兜底 panic，返回统一错误信封而不是断开连接
func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Errorf("panic recovered: %v\n%s", r, debug.Stack())
				utils.Fail(c, constant.CodeInternalError)
			}
		}()
		c.Next()
	}
}
