package idgen

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

func hex32() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// MerchantID 生成商户号：M + 31 位十六进制
func MerchantID() string {
	return "M" + hex32()[:31]
}

// OrderID 生成系统订单号：14 位紧凑 UTC 时间戳 + 18 位十六进制
func OrderID() string {
	ts := time.Now().UTC().Format("20060102150405")
	return ts + hex32()[:18]
}

// TransactionID 生成交易流水号：T + 32 位十六进制
func TransactionID() string {
	return "T" + hex32()
}

// AccountID 生成账户号：A + 32 位十六进制
func AccountID() string {
	return "A" + hex32()
}

const nonceChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NonceStr 生成随机字符串，用于签名信封的 nonce_str
func NonceStr(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for sb.Len() < length {
		for _, b := range uuid.New() {
			if sb.Len() == length {
				break
			}
			sb.WriteByte(nonceChars[int(b)%len(nonceChars)])
		}
	}
	return sb.String()
}
