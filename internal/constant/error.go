package constant

import (
	"errors"
	"fmt"
)

// BizError 业务错误：携带响应码，由 handler 翻译为统一信封
type BizError struct {
	BizCode string
}

func (e *BizError) Error() string {
	info := Info(e.BizCode)
	return fmt.Sprintf("code: %s, message: %s", e.BizCode, info.EN)
}

func (e *BizError) Code() string { return e.BizCode }

// NewError 创建业务错误
func NewError(code string) *BizError {
	return &BizError{BizCode: code}
}

// CodeOf 提取业务错误码；非业务错误归为内部错误
func CodeOf(err error) string {
	var be *BizError
	if errors.As(err, &be) {
		return be.BizCode
	}
	return CodeInternalError
}
