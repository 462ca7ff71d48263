package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/service"
)

// OperationLog 记录管理接口的操作审计行（异步写库）
func OperationLog(logSvc *service.LogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logSvc.Record(
			c.GetString("admin_user"),
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
