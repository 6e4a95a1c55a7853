package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/utils/ginx"
)

// Cors 跨域配置，允许的来源由 CORS_ALLOWED_ORIGINS 指定
func Cors() gin.HandlerFunc {
	return cors.New(newCorsConfig(envs.CorsAllowedOrigins))
}

func newCorsConfig(allowedOrigins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", ginx.RequestIDHeaderKey},
		ExposeHeaders: []string{ginx.RequestIDHeaderKey},
		MaxAge:        12 * time.Hour,
	}

	origins := lo.Compact(lo.Map(strings.Split(allowedOrigins, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))
	if len(origins) == 0 || lo.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
