package handler

import (
	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/model"
)

// merchantFrom 取验签中间件写入的商户，信签名链路上必定存在
func merchantFrom(c *gin.Context) *model.Merchant {
	v, ok := c.Get("merchant")
	if !ok {
		return nil
	}
	m, _ := v.(*model.Merchant)
	return m
}
