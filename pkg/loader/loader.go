package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/pkg/errors"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/infras/pubchem"
	"github.com/narasux/chemlab/pkg/model"
	"github.com/narasux/chemlab/pkg/utils/markdownx"
)

// ReactionLoader 化学反应数据加载器
type ReactionLoader struct {
	baseDir      string
	reactionData model.ReactionData
}

// New ...
func New() *ReactionLoader {
	return NewWithBaseDir(envs.DataBaseDir)
}

// NewWithBaseDir 指定数据目录
func NewWithBaseDir(baseDir string) *ReactionLoader {
	return &ReactionLoader{baseDir: baseDir, reactionData: model.ReactionData{}}
}

func (l *ReactionLoader) Exec() (*model.ReactionData, error) {
	for _, f := range []func() error{
		l.loadReactionMetadata,
		l.validateReactions,
		l.loadReactionContent,
		l.fillImageURLs,
		l.collectTypes,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}
	return &l.reactionData, nil
}

// 加载化学反应元数据
func (l *ReactionLoader) loadReactionMetadata() error {
	path := filepath.Join(l.baseDir, "reactions.json")
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	if err = json.Unmarshal(content, &l.reactionData.Reactions); err != nil {
		return errors.Wrapf(err, "unmarshal %s", path)
	}
	return nil
}

// 校验 ID 唯一，反应物与生成物不能为空
func (l *ReactionLoader) validateReactions() error {
	ids := set.NewStringSet()
	for _, reaction := range l.reactionData.Reactions {
		if reaction.ID == "" {
			return errors.Errorf("reaction %q without id", reaction.Name)
		}
		if ids.Has(reaction.ID) {
			return errors.Errorf("duplicate reaction id %s", reaction.ID)
		}
		ids.Add(reaction.ID)

		if len(reaction.Reactants) == 0 || len(reaction.Products) == 0 {
			return errors.Errorf("reaction %s must have both reactants and products", reaction.ID)
		}
	}
	return nil
}

// 加载化学反应讲解，讲解文件是可选的
func (l *ReactionLoader) loadReactionContent() error {
	for idx, reaction := range l.reactionData.Reactions {
		path := filepath.Join(l.baseDir, "reactions", reaction.ID+".md")
		content, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		l.reactionData.Reactions[idx].Content = markdownx.ToHTML(content)
	}
	return nil
}

// 结构图地址由 CID 推导，不需要在数据文件中维护
func (l *ReactionLoader) fillImageURLs() error {
	for _, reaction := range l.reactionData.Reactions {
		for _, compounds := range []model.Compounds{reaction.Reactants, reaction.Products} {
			for idx := range compounds {
				compounds[idx].ImageURL = pubchem.ImageURL(compounds[idx].CID)
			}
		}
	}
	return nil
}

// 从元数据中采集反应类型
func (l *ReactionLoader) collectTypes() error {
	types := set.NewStringSet()
	for _, reaction := range l.reactionData.Reactions {
		types.Append(string(reaction.Type))
	}
	l.reactionData.Types = types.ToSlice()
	slices.Sort(l.reactionData.Types)
	return nil
}
