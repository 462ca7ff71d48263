package logger

import (
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

var App *logrus.Logger

// Init 初始化应用日志：按天切分，保留 7 天
func Init(logType string) {
	App = NewLogger(logType)
}

func NewLogger(logType string) *logrus.Logger {
	l := logrus.New()
	logPath := "./logs/" + logType
	_ = os.MkdirAll(logPath, 0755)

	writer, err := rotatelogs.New(
		logPath+"/"+logType+".log.%Y-%m-%d",
		rotatelogs.WithLinkName(logPath+"/"+logType+".log"),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err == nil {
		l.SetOutput(writer)
	}
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// L 日志句柄，未初始化时退回 stderr（测试场景）
func L() *logrus.Logger {
	if App == nil {
		App = logrus.New()
	}
	return App
}
