package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/infras/database"
	"github.com/narasux/chemlab/pkg/storage"
)

func Get404(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

func GetRobotsTxt(c *gin.Context) {
	c.File(filepath.Join(envs.StaticFileBaseDir, "robots.txt"))
}

// Healthz 健康检查，数据库为可选依赖，不影响健康状态
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"reactions": storage.ReactionData != nil,
		"database":  database.Ready(),
	})
}
