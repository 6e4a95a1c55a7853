package storage

import (
	"context"
	"sync"

	"github.com/narasux/chemlab/pkg/infras/pubchem"
	"github.com/narasux/chemlab/pkg/loader"
	"github.com/narasux/chemlab/pkg/model"
)

// CompoundResolver 化合物数据查询（实现保证不返回错误，失败时降级）
type CompoundResolver interface {
	ResolveByIdentifier(ctx context.Context, cid int64) model.Compound
	SearchByName(ctx context.Context, query string, limit int) model.Compounds
	ListCommonDrugs(ctx context.Context, limit int) model.Compounds
}

// ReactionData 化学反应数据（启动时从数据目录加载，只读）
var ReactionData *model.ReactionData

// Compounds 化合物查询客户端
var Compounds CompoundResolver

var (
	reactionInitOnce sync.Once
	compoundInitOnce sync.Once
)

// InitReactionData 加载并初始化化学反应数据
func InitReactionData() {
	if ReactionData != nil {
		return
	}
	reactionInitOnce.Do(func() {
		var err error
		if ReactionData, err = loader.New().Exec(); err != nil {
			panic(err)
		}
	})
}

// InitCompoundClient 初始化 PubChem 客户端
func InitCompoundClient() {
	if Compounds != nil {
		return
	}
	compoundInitOnce.Do(func() {
		Compounds = pubchem.NewClient()
	})
}
