package model

import "strings"

// ReactionType 化学反应类型
type ReactionType string

const (
	ReactionTypeSynthesis         ReactionType = "synthesis"
	ReactionTypeDecomposition     ReactionType = "decomposition"
	ReactionTypeSingleReplacement ReactionType = "single-replacement"
	ReactionTypeDoubleReplacement ReactionType = "double-replacement"
)

// Reaction 化学反应
type Reaction struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"desc"`
	Type        ReactionType `json:"type"`
	Reactants   Compounds    `json:"reactants"`
	Products    Compounds    `json:"products"`
	UpdatedAt   string       `json:"updatedAt"`
	// Content 反应讲解（markdown 渲染后的 html）
	Content string `json:"content"`
}

// Reactions 化学反应列表
type Reactions []Reaction

// ReactionData 化学反应数据
type ReactionData struct {
	Types     []string  `json:"types"`
	Reactions Reactions `json:"reactions"`
}

// GetByID 根据 ID 获取化学反应
func (rs Reactions) GetByID(id string) *Reaction {
	for _, reaction := range rs {
		if reaction.ID == id {
			return &reaction
		}
	}
	return nil
}

// FilterByType 根据类型过滤化学反应
func (rs Reactions) FilterByType(typ ReactionType) Reactions {
	var reactions Reactions
	for _, reaction := range rs {
		if reaction.Type == typ {
			reactions = append(reactions, reaction)
		}
	}
	return reactions
}

// Search 按名称或描述搜索（忽略大小写的子串匹配）
func (rs Reactions) Search(query string) Reactions {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rs
	}

	var reactions Reactions
	for _, reaction := range rs {
		if strings.Contains(strings.ToLower(reaction.Name), query) ||
			strings.Contains(strings.ToLower(reaction.Description), query) {
			reactions = append(reactions, reaction)
		}
	}
	return reactions
}
