package ginx

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	// MaxPageSize 单页最大数量
	MaxPageSize = 50
	// MinPageSize 单页最小数量
	MinPageSize = 10
	// MinPage 最小页码数
	MinPage = 1

	// MaxLimit 化合物查询数量上限（每个化合物都会触发上游请求）
	MaxLimit = 50
	// MinLimit 化合物查询数量下限
	MinLimit = 1
)

// GetPageSizeFromQuery ...
func GetPageSizeFromQuery(c *gin.Context) int {
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	pageSize = lo.Min([]int{MaxPageSize, pageSize})
	pageSize = lo.Max([]int{MinPageSize, pageSize})
	return pageSize
}

// GetPageNumFromQuery 页码不合法（含超出 int 范围）时使用 MinPage
func GetPageNumFromQuery(c *gin.Context) int {
	pageNum, err := strconv.Atoi(c.Query("page_num"))
	if err != nil {
		return MinPage
	}
	return lo.Max([]int{MinPage, pageNum})
}

// GetLimitFromQuery 获取 limit 参数，未指定或不合法时使用 defaultLimit，结果限制在 [MinLimit, MaxLimit]
func GetLimitFromQuery(c *gin.Context, defaultLimit int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = defaultLimit
	}
	limit = lo.Min([]int{MaxLimit, limit})
	return lo.Max([]int{MinLimit, limit})
}

// Paginate 按页码切分列表，页码超出范围时返回空列表
func Paginate[T any](items []T, pageNum, pageSize int) []T {
	if pageNum < MinPage || pageSize <= 0 {
		return []T{}
	}
	// 先比较页码再相乘，避免超大页码溢出
	pageCount := len(items) / pageSize
	if len(items)%pageSize != 0 {
		pageCount++
	}
	if pageNum > pageCount {
		return []T{}
	}
	start := (pageNum - 1) * pageSize
	return items[start:lo.Min([]int{start + pageSize, len(items)})]
}
