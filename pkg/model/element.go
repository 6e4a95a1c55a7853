package model

import "strings"

// Category 元素分类
type Category string

const (
	CategoryNonmetal        Category = "nonmetal"
	CategoryNobleGas        Category = "noble-gas"
	CategoryAlkaliMetal     Category = "alkali-metal"
	CategoryAlkalineEarth   Category = "alkaline-earth"
	CategoryMetalloid       Category = "metalloid"
	CategoryHalogen         Category = "halogen"
	CategoryTransitionMetal Category = "transition-metal"
	CategoryMetal           Category = "metal"
	CategoryLanthanide      Category = "lanthanide"
	CategoryActinide        Category = "actinide"
)

// Block 元素分区
type Block string

const (
	BlockS Block = "s"
	BlockP Block = "p"
	BlockD Block = "d"
	BlockF Block = "f"
)

// Element 化学元素，Group 为 nil 表示不归属任何族（如镧系、锕系）
type Element struct {
	Number                int      `json:"number"`
	Symbol                string   `json:"symbol"`
	Name                  string   `json:"name"`
	AtomicMass            float64  `json:"atomicMass"`
	Category              Category `json:"category"`
	Group                 *int     `json:"group"`
	Period                int      `json:"period"`
	Block                 Block    `json:"block"`
	ElectronConfiguration string   `json:"electronConfiguration"`
}

// Elements 元素列表（按原子序数升序）
type Elements []Element

// GetBySymbol 根据元素符号获取元素（忽略大小写）
func (es Elements) GetBySymbol(symbol string) *Element {
	for _, element := range es {
		if strings.EqualFold(element.Symbol, symbol) {
			return &element
		}
	}
	return nil
}

// GetByNumber 根据原子序数获取元素
func (es Elements) GetByNumber(number int) *Element {
	for _, element := range es {
		if element.Number == number {
			return &element
		}
	}
	return nil
}

// FilterByCategory 根据分类过滤元素
func (es Elements) FilterByCategory(category Category) Elements {
	var elements Elements
	for _, element := range es {
		if element.Category == category {
			elements = append(elements, element)
		}
	}
	return elements
}

// FilterByPeriod 根据周期过滤元素
func (es Elements) FilterByPeriod(period int) Elements {
	var elements Elements
	for _, element := range es {
		if element.Period == period {
			elements = append(elements, element)
		}
	}
	return elements
}
