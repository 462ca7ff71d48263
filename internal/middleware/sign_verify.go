package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dao"
	"virtual-payment-api/internal/kv"
	"virtual-payment-api/internal/logger"
	"virtual-payment-api/internal/utils"
	"virtual-payment-api/internal/utils/timeutil"
)

const signType = "HMAC-SHA256"

// 信封必填字段。sign_type 可省略，省略时按 HMAC-SHA256 处理。
var requiredParams = []string{"app_id", "timestamp", "nonce_str", "sign"}

// SignVerify 校验开放接口的签名信封。校验顺序固定：
// 必填参数 -> 时间戳窗口 -> nonce 占用 -> 商户存在 -> 签名类型 -> 签名。
// nonce 在验签之前占用且失败不回滚，保证同一 nonce 只有一次验签机会。
func SignVerify() gin.HandlerFunc {
	merchantDao := dao.NewMerchantDao()
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil || len(body) == 0 {
			utils.Fail(c, constant.CodeMissingParam)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		params, err := utils.FlattenJSON(body)
		if err != nil {
			utils.Fail(c, constant.CodeMissingParam)
			return
		}
		for _, k := range requiredParams {
			if params[k] == "" {
				utils.Fail(c, constant.CodeMissingParam)
				return
			}
		}

		window := time.Duration(config.C.Security.NonceTTLSeconds) * time.Second
		ts, err := timeutil.ParseCompact(params["timestamp"])
		if err != nil || !timeutil.WithinWindow(ts, window) {
			utils.Fail(c, constant.CodeExpiredTimestamp)
			return
		}

		ok, err := kv.ClaimNonce(c.Request.Context(), params["app_id"], params["nonce_str"], window)
		if err != nil {
			logger.L().Errorf("claim nonce failed: %v", err)
			utils.Fail(c, constant.CodeInternalError)
			return
		}
		if !ok {
			utils.Fail(c, constant.CodeDuplicateRequest)
			return
		}

		m, err := merchantDao.GetByMerchantID(params["app_id"])
		if err != nil {
			if dao.IsNotFound(err) {
				utils.Fail(c, constant.CodeInvalidMerchant)
				return
			}
			logger.L().Errorf("merchant lookup failed: %v", err)
			utils.Fail(c, constant.CodeInternalError)
			return
		}

		if st := params["sign_type"]; st != "" && st != signType {
			utils.Fail(c, constant.CodeUnsupportedSignType)
			return
		}

		if !utils.VerifySign(params, m.PrivateKey, params["sign"]) {
			utils.Fail(c, constant.CodeInvalidSign)
			return
		}

		c.Set("merchant", m)
		c.Next()
	}
}
