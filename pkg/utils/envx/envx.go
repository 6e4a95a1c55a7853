package envx

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// 本地开发时可通过 .env.local 注入环境变量，已存在的环境变量不会被覆盖
func init() {
	_ = godotenv.Load(".env.local")
}

// Get 读取环境变量，不存在或为空时返回默认值
func Get(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetInt 读取整型环境变量，无法解析时返回默认值
func GetInt(key string, fallback int) int {
	value, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

// GetFloat 读取浮点型环境变量，无法解析时返回默认值
func GetFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(Get(key, ""), 64)
	if err != nil {
		return fallback
	}
	return value
}

// GetDuration 读取时间间隔（如 15s，1m），无法解析时返回默认值
func GetDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(Get(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
