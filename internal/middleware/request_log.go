package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"virtual-payment-api/internal/logger"
	"virtual-payment-api/internal/metrics"
)

// RequestLog 为每个请求生成 debug_id，记访问日志并上报指标。
// debug_id 同时回写响应头，便于用户拿着排查。
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		debugID := uuid.New().String()
		c.Set("debug_id", debugID)
		c.Header("X-Debug-Id", debugID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, path).Observe(latency.Seconds())

		logger.L().WithFields(map[string]interface{}{
			"debug_id": debugID,
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"ip":       c.ClientIP(),
			"latency":  latency.String(),
		}).Info("request")
	}
}
