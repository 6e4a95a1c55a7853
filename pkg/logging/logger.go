package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/narasux/chemlab/pkg/envs"
)

// 日志切割参数，暂时没有放出来配置的必要
const (
	// 单文件大小上限（MB）
	logFileMaxSize = 128
	// 最多保留的归档数量
	logFileMaxBackups = 10
	// 归档保留天数
	logFileMaxAge = 14
)

// 获取日志 Writer，这里返回双写 Writer（stdout & file）
func getWriter(logType string) (io.Writer, error) {
	fileWriter, err := getFileWriter(logType)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(os.Stdout, fileWriter), nil
}

// 不同的日志类型分目录存储：{LogFileBaseDir}/{logType}/{logType}.log
func getFileWriter(logType string) (*lumberjack.Logger, error) {
	dir := filepath.Join(envs.LogFileBaseDir, logType)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, logType+".log"),
		MaxSize:    logFileMaxSize,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAge,
		LocalTime:  true,
	}, nil
}
