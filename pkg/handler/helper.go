package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/chemlab/pkg/infras/database"
	"github.com/narasux/chemlab/pkg/logging"
	"github.com/narasux/chemlab/pkg/model"
	"github.com/narasux/chemlab/pkg/periodic"
	"github.com/narasux/chemlab/pkg/storage"
)

// 化学品页面默认展示的药物数量
const drugsPageLimit = 12

// ErrInvalidCID CID 必须为正整数
var ErrInvalidCID = errors.New("cid must be a positive integer")

func parseCID(c *gin.Context) (int64, error) {
	cid, err := strconv.ParseInt(c.Param("cid"), 10, 64)
	if err != nil || cid <= 0 {
		return 0, errors.Wrapf(ErrInvalidCID, "invalid cid %q", c.Param("cid"))
	}
	return cid, nil
}

// 按元素符号查找，符号不存在时尝试按原子序数查找
func findElement(key string) (model.Element, bool) {
	if element, ok := periodic.FindBySymbol(key); ok {
		return element, true
	}
	number, err := strconv.Atoi(key)
	if err != nil {
		return model.Element{}, false
	}
	return periodic.FindByNumber(number)
}

// 按类型与关键字过滤化学反应
func filterReactions(c *gin.Context) model.Reactions {
	reactions := storage.ReactionData.Reactions
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		reactions = reactions.FilterByType(model.ReactionType(typ))
	}
	return reactions.Search(c.Query("q"))
}

// 统计化合物点赞数，未启用数据库时为 0
func countLikes(ctx context.Context, cid int64) int64 {
	if !database.Ready() {
		return 0
	}
	var count int64
	err := database.Client(ctx).Model(&model.LikeRecord{}).Where("cid = ?", cid).Count(&count).Error
	if err != nil {
		logging.GetWebLogger().WithError(err).Warnf("failed to count likes of compound %d", cid)
	}
	return count
}
