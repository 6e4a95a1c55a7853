package router

import (
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/handler"
	"github.com/narasux/chemlab/pkg/middleware"
	"github.com/narasux/chemlab/pkg/utils/funcs"
)

// New 创建 gin.Engine 并注册全部路由
func New() *gin.Engine {
	gin.SetMode(envs.GinRunMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(gin.Recovery())

	// 设置静态文件
	router.Static("/static", envs.StaticFileBaseDir)
	// 设置模板方法
	router.SetFuncMap(funcs.NewFuncMap())
	// 加载 HTML 模板文件
	router.LoadHTMLGlob(filepath.Join(envs.TmplFileBaseDir, "webfe", "*"))
	// 404
	router.NoRoute(handler.Get404)
	// robots.txt
	router.GET("robots.txt", handler.GetRobotsTxt)
	// 健康检查 & 指标
	router.GET("healthz", handler.Healthz)
	router.GET("metrics", gin.WrapH(promhttp.Handler()))

	// webfe 路由
	{
		webfeRg := router.Group("")
		// 主页
		webfeRg.GET("", handler.GetHomePage)
		webfeRg.GET("home", handler.GetHomePage)
		// 元素周期表
		webfeRg.GET("elements", handler.ListElements)
		// 元素详情
		webfeRg.GET("elements/:symbol", handler.RetrieveElement)
		// 化合物搜索
		webfeRg.GET("compounds", handler.SearchCompounds)
		// 化合物详情
		webfeRg.GET("compounds/:cid", handler.RetrieveCompound)
		// 常见药物
		webfeRg.GET("drugs", handler.ListDrugs)
		// 化学反应列表
		webfeRg.GET("reactions", handler.ListReactions)
		// 化学反应详情
		webfeRg.GET("reactions/:id", handler.RetrieveReaction)
		// RSS
		webfeRg.GET("rss", handler.GetRSS)
	}

	// api 路由
	{
		apiRg := router.Group("apis")
		apiRg.GET("elements", handler.ElementListAPI)
		apiRg.GET("elements/:symbol", handler.ElementRetrieveAPI)
		apiRg.GET("compounds", handler.CompoundSearchAPI)
		apiRg.GET("compounds/:cid", handler.CompoundRetrieveAPI)
		apiRg.GET("drugs", handler.DrugListAPI)
		apiRg.GET("reactions", handler.ReactionListAPI)
		apiRg.GET("reactions/:id", handler.ReactionRetrieveAPI)
		// 点赞化合物
		apiRg.POST("compounds/:cid/like", handler.LikeCompound)
	}

	return router
}

func InitRouter() {
	if err := New().Run(":" + envs.ServerPort); err != nil {
		panic(fmt.Sprintf("failed to start server: %s", err.Error()))
	}
}
