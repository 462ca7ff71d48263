package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/constant"
	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/kv"
)

func rateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/t", RateLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": "OK"})
	})
	return r
}

func postAppID(r *gin.Engine, appID string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"app_id": appID})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/t", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitBoundary(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	dal.RedisClient = rdb
	config.C.Security.RateLimitPerMinute = 5
	r := rateRouter()

	key := kv.RateKey("M1", "192.0.2.1")

	// 前 5 个请求放行并计数
	for i := 0; i < 5; i++ {
		if i == 0 {
			mock.ExpectGet(key).RedisNil()
		} else {
			mock.ExpectGet(key).SetVal(strconv.Itoa(i))
		}
		mock.ExpectIncr(key).SetVal(int64(i + 1))
		mock.ExpectExpire(key, time.Minute).SetVal(true)

		w := postAppID(r, "M1")
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	// 第 6 个达到上限
	mock.ExpectGet(key).SetVal("5")
	w := postAppID(r, "M1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var env struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, constant.CodeRateLimitExceeded, env.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitSkipsWithoutMerchant(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	dal.RedisClient = rdb
	config.C.Security.RateLimitPerMinute = 1
	r := rateRouter()

	// 拿不到商户标识直接放行，不触发任何 Redis 调用
	w := postAppID(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
