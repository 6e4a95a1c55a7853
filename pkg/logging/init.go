package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narasux/chemlab/pkg/envs"
)

var initOnce sync.Once

// 注：虽然 zap 性能更好，不过 logrus 展示效果较好
// 科普站点对日志性能没有太高要求，继续使用 logrus

// 访问日志
var accessLogger *logrus.Logger

// web 页面日志（Handler...)
var webLogger *logrus.Logger

// sql 日志（点赞记录落库）
var sqlLogger *logrus.Logger

// 上游日志（PubChem 请求失败、降级等）
var upstreamLogger *logrus.Logger

const (
	LogTypeSystem   = "system"
	LogTypeAccess   = "access"
	LogTypeWeb      = "web"
	LogTypeSql      = "sql"
	LogTypeUpstream = "upstream"
)

func InitLogger() {
	initSystemLogger()

	initOnce.Do(func() {
		accessLogger = newJsonLogger(LogTypeAccess)
		webLogger = newJsonLogger(LogTypeWeb)
		sqlLogger = newJsonLogger(LogTypeSql)
		upstreamLogger = newJsonLogger(LogTypeUpstream)
	})
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetWebLogger() *logrus.Logger {
	if webLogger == nil {
		return GetSystemLogger()
	}
	return webLogger
}

func GetSqlLogger() *logrus.Logger {
	if sqlLogger == nil {
		return GetSystemLogger()
	}
	return sqlLogger
}

func GetUpstreamLogger() *logrus.Logger {
	if upstreamLogger == nil {
		return GetSystemLogger()
	}
	return upstreamLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	// 设置日志级别
	level, err := logrus.ParseLevel(envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func newJsonLogger(logType string) *logrus.Logger {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	// 设置日志级别
	level, err := logrus.ParseLevel(envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
