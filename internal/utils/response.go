package utils

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"virtual-payment-api/internal/constant"
)

// LocalizedMsg 中英文提示
type LocalizedMsg struct {
	ZhCN string `json:"zh_CN"`
	EnUS string `json:"en_US"`
}

// Envelope 统一响应信封
type Envelope struct {
	Code         string       `json:"code"`
	LocalizedMsg LocalizedMsg `json:"localized_msg"`
	Data         interface{}  `json:"data"`
	DebugID      string       `json:"debug_id"`
	Timestamp    string       `json:"timestamp"`
}

// DebugID 取请求链路 ID（request_log 中间件写入），没有则现生成
func DebugID(c *gin.Context) string {
	if id := c.GetString("debug_id"); id != "" {
		return id
	}
	return uuid.New().String()
}

func envelope(c *gin.Context, code string, data interface{}) Envelope {
	info := constant.Info(code)
	if data == nil {
		data = gin.H{}
	}
	return Envelope{
		Code:         code,
		LocalizedMsg: LocalizedMsg{ZhCN: info.CN, EnUS: info.EN},
		Data:         data,
		DebugID:      DebugID(c),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
}

// OK 按响应码目录写出成功信封（HTTP 状态取自目录）
func OK(c *gin.Context, code string, data interface{}) {
	c.JSON(constant.Info(code).HTTP, envelope(c, code, data))
}

// Fail 写出错误信封并中断
func Fail(c *gin.Context, code string) {
	c.AbortWithStatusJSON(constant.Info(code).HTTP, envelope(c, code, nil))
}

// FailWithData 错误信封附带细节（如逐字段校验提示）
func FailWithData(c *gin.Context, code string, data interface{}) {
	c.AbortWithStatusJSON(constant.Info(code).HTTP, envelope(c, code, data))
}

// FailErr 将 service 层错误翻译为错误信封
func FailErr(c *gin.Context, err error) {
	Fail(c, constant.CodeOf(err))
}
