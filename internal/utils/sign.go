package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

// CanonicalString 将参数按 key ASCII 升序拼接为 k1=v1&k2=v2&…，
// sign 字段不参与签名。
func CanonicalString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "sign" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(params[k])
	}
	return sb.String()
}

// GenerateSign 对规范串计算 HMAC-SHA256，输出大写十六进制
func GenerateSign(params map[string]string, secretKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(CanonicalString(params)))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// VerifySign 重算签名并做恒定时间比较
func VerifySign(params map[string]string, secretKey string, sign string) bool {
	if sign == "" {
		return false
	}
	expected := GenerateSign(params, secretKey)
	return hmac.Equal([]byte(expected), []byte(sign))
}

// FlattenJSON 把请求体解成用于签名的 map[string]string。
// 数字保留原文（json.Number），布尔与 null 按字面量，嵌套结构重新
// 序列化为紧凑 JSON。
func FlattenJSON(body []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		case bool:
			if val {
				out[k] = "true"
			} else {
				out[k] = "false"
			}
		case nil:
			out[k] = "null"
		default:
			b, _ := json.Marshal(val)
			out[k] = string(b)
		}
	}
	return out, nil
}
