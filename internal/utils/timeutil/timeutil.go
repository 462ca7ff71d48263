package timeutil

import (
	"errors"
	"time"
)

const compactLayout = "20060102150405"

// Compact 格式化为 14 位紧凑 UTC 时间戳 YYYYMMDDhhmmss
func Compact(t time.Time) string {
	return t.UTC().Format(compactLayout)
}

// ParseCompact 解析 14 位紧凑 UTC 时间戳
func ParseCompact(s string) (time.Time, error) {
	if len(s) != 14 {
		return time.Time{}, errors.New("timestamp must be 14 digits")
	}
	return time.ParseInLocation(compactLayout, s, time.UTC)
}

// WithinWindow 判断 |now-t| 是否在窗口内（前后均可）
func WithinWindow(t time.Time, window time.Duration) bool {
	diff := time.Since(t)
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}
