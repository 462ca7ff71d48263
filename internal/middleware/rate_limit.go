package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/kv"
	"virtual-payment-api/internal/logger"
	"virtual-payment-api/internal/model"
	"virtual-payment-api/internal/utils"
)

const rateWindow = time.Minute

// RateLimit 按 (商户, 客户端 IP) 做固定窗口限流。取不到商户标识时
// 直接放行，Redis 故障同样放行（限流降级不拦业务）。
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		mid := merchantID(c)
		if mid == "" {
			c.Next()
			return
		}
		ip := c.ClientIP()
		limit := int64(config.C.Security.RateLimitPerMinute)

		n, err := kv.RateCount(c.Request.Context(), mid, ip)
		if err != nil {
			logger.L().Errorf("rate count failed: %v", err)
			c.Next()
			return
		}
		if n >= limit {
			utils.Fail(c, constant.CodeRateLimitExceeded)
			return
		}
		if _, err := kv.RateIncr(c.Request.Context(), mid, ip, rateWindow); err != nil {
			logger.L().Errorf("rate incr failed: %v", err)
		}
		c.Next()
	}
}

// merchantID 优先取验签中间件放进上下文的商户，否则从请求体 app_id 读
func merchantID(c *gin.Context) string {
	if v, ok := c.Get("merchant"); ok {
		if m, ok := v.(*model.Merchant); ok {
			return m.MerchantID
		}
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	var probe struct {
		AppID string `json:"app_id"`
	}
	if json.Unmarshal(body, &probe) != nil {
		return ""
	}
	return probe.AppID
}
