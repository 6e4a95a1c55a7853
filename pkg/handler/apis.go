package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/narasux/chemlab/pkg/infras/database"
	"github.com/narasux/chemlab/pkg/infras/pubchem"
	"github.com/narasux/chemlab/pkg/model"
	"github.com/narasux/chemlab/pkg/periodic"
	"github.com/narasux/chemlab/pkg/storage"
	"github.com/narasux/chemlab/pkg/utils/ginx"
)

// 同一 IP 对同一化合物的点赞统计间隔
const likeInterval = 30 * time.Minute

// ListResult 列表响应
type ListResult[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// ElementListAPI 元素列表，支持按分类过滤
func ElementListAPI(c *gin.Context) {
	elements := periodic.All()
	if category := c.Query("category"); category != "" {
		elements = elements.FilterByCategory(model.Category(category))
	}
	ginx.SetResp(c, http.StatusOK, ListResult[model.Element]{Count: len(elements), Results: elements})
}

// ElementRetrieveAPI 元素详情，支持元素符号或原子序数
func ElementRetrieveAPI(c *gin.Context) {
	element, ok := findElement(c.Param("symbol"))
	if !ok {
		ginx.SetErrResp(c, http.StatusNotFound, "element not found")
		return
	}
	ginx.SetResp(c, http.StatusOK, element)
}

// CompoundSearchAPI 根据名称搜索化合物
func CompoundSearchAPI(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		ginx.SetErrResp(c, http.StatusBadRequest, "query parameter q is required")
		return
	}
	limit := ginx.GetLimitFromQuery(c, pubchem.DefaultSearchLimit)

	compounds := storage.Compounds.SearchByName(c.Request.Context(), query, limit)
	ginx.SetResp(c, http.StatusOK, ListResult[model.Compound]{Count: len(compounds), Results: compounds})
}

// CompoundRetrieveAPI 化合物详情，上游不可用时返回降级记录
func CompoundRetrieveAPI(c *gin.Context) {
	cid, err := parseCID(c)
	if err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusOK, storage.Compounds.ResolveByIdentifier(c.Request.Context(), cid))
}

// DrugListAPI 常见药物
func DrugListAPI(c *gin.Context) {
	limit := ginx.GetLimitFromQuery(c, pubchem.DefaultDrugsLimit)

	drugs := storage.Compounds.ListCommonDrugs(c.Request.Context(), limit)
	ginx.SetResp(c, http.StatusOK, ListResult[model.Compound]{Count: len(drugs), Results: drugs})
}

// ReactionListAPI 化学反应列表，支持按类型、关键字过滤以及分页
func ReactionListAPI(c *gin.Context) {
	reactions := filterReactions(c)
	pageNum, pageSize := ginx.GetPageNumFromQuery(c), ginx.GetPageSizeFromQuery(c)

	ginx.SetResp(c, http.StatusOK, ListResult[model.Reaction]{
		Count:   len(reactions),
		Results: ginx.Paginate(reactions, pageNum, pageSize),
	})
}

// ReactionRetrieveAPI 化学反应详情
func ReactionRetrieveAPI(c *gin.Context) {
	reaction := storage.ReactionData.Reactions.GetByID(c.Param("id"))
	if reaction == nil {
		ginx.SetErrResp(c, http.StatusNotFound, "reaction not found")
		return
	}
	ginx.SetResp(c, http.StatusOK, reaction)
}

// LikeCompound 点赞化合物
func LikeCompound(c *gin.Context) {
	if !database.Ready() {
		ginx.SetErrResp(c, http.StatusServiceUnavailable, "like is unavailable: database not configured")
		return
	}
	cid, err := parseCID(c)
	if err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, err.Error())
		return
	}
	clientIP := ginx.GetClientIP(c)
	db := database.Client(c.Request.Context())

	// 添加化合物点赞记录（同一 IP 30 分钟内只统计一次）
	var count int64
	err = db.Model(&model.LikeRecord{}).Where(
		"ip = ? AND cid = ? AND created_at >= ?",
		clientIP, cid, time.Now().Add(-likeInterval),
	).Count(&count).Error
	if err != nil {
		ginx.SetError(c, err)
		ginx.SetErrResp(c, http.StatusInternalServerError, err.Error())
		return
	}
	if count != 0 {
		ginx.SetResp(c, http.StatusNoContent, nil)
		return
	}

	record := model.LikeRecord{
		IP:        clientIP,
		CID:       cid,
		BaseModel: model.BaseModel{Creator: ginx.GetRequestID(c)},
	}
	if err = db.Create(&record).Error; err != nil {
		ginx.SetError(c, err)
		ginx.SetErrResp(c, http.StatusInternalServerError, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusNoContent, nil)
}
