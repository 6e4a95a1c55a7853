// Package periodic 提供静态的元素周期表数据及查询方法，不涉及任何网络请求
package periodic

import (
	"slices"

	"github.com/TencentBlueKing/gopkg/collection/set"

	"github.com/narasux/chemlab/pkg/model"
)

// GroupCount 周期表的列（族）数
const GroupCount = 18

// DefaultCategoryClass 未知分类使用的样式类
const DefaultCategoryClass = "bg-gray-300"

var categoryClassMap = map[model.Category]string{
	model.CategoryNonmetal:        "bg-element-nonmetal",
	model.CategoryNobleGas:        "bg-element-noble-gas",
	model.CategoryAlkaliMetal:     "bg-element-alkali-metal",
	model.CategoryAlkalineEarth:   "bg-element-alkaline-earth",
	model.CategoryMetalloid:       "bg-element-metalloid",
	model.CategoryHalogen:         "bg-element-halogen",
	model.CategoryTransitionMetal: "bg-element-transition-metal",
	model.CategoryMetal:           "bg-element-metal",
	model.CategoryLanthanide:      "bg-element-lanthanide",
	model.CategoryActinide:        "bg-element-actinide",
}

// All 获取全部元素（副本，调用方修改不影响周期表）
func All() model.Elements {
	return slices.Clone(elements)
}

// FindBySymbol 根据元素符号查询（忽略大小写），不存在时返回 false
func FindBySymbol(symbol string) (model.Element, bool) {
	if element := elements.GetBySymbol(symbol); element != nil {
		return *element, true
	}
	return model.Element{}, false
}

// FindByNumber 根据原子序数查询，不存在时返回 false
func FindByNumber(number int) (model.Element, bool) {
	if element := elements.GetByNumber(number); element != nil {
		return *element, true
	}
	return model.Element{}, false
}

// CategoryDisplayClass 获取分类对应的展示样式，未知分类返回默认样式
func CategoryDisplayClass(category string) string {
	if class, ok := categoryClassMap[model.Category(category)]; ok {
		return class
	}
	return DefaultCategoryClass
}

// Categories 周期表中出现过的分类（字典序）
func Categories() []string {
	categories := set.NewStringSet()
	for _, element := range elements {
		categories.Append(string(element.Category))
	}
	result := categories.ToSlice()
	slices.Sort(result)
	return result
}

// Layout 按周期生成 18 列的网格，用于渲染周期表，nil 表示空位
func Layout() [][]*model.Element {
	maxPeriod := 0
	for _, element := range elements {
		maxPeriod = max(maxPeriod, element.Period)
	}

	rows := make([][]*model.Element, maxPeriod)
	for idx := range rows {
		rows[idx] = make([]*model.Element, GroupCount)
	}
	for _, element := range All() {
		if element.Group == nil || *element.Group < 1 || *element.Group > GroupCount {
			continue
		}
		rows[element.Period-1][*element.Group-1] = &element
	}
	return rows
}
