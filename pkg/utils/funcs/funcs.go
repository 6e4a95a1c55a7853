package funcs

import (
	"html/template"
	"regexp"
	"strconv"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/narasux/chemlab/pkg/periodic"
)

var formulaDigitsRegex = regexp.MustCompile(`(\d+)`)

// NewFuncMap 模板方法：sprig 全家桶 + 站点自定义方法
func NewFuncMap() template.FuncMap {
	funcMap := template.FuncMap(sprig.FuncMap())
	// 获取当前年份
	funcMap["curYear"] = func() int {
		return time.Now().Year()
	}
	// 元素分类对应的样式
	funcMap["categoryClass"] = periodic.CategoryDisplayClass
	// 化学式下标，如 H2O -> H<sub>2</sub>O
	funcMap["formula"] = Formula
	// 可选字段展示，nil 时使用占位符
	funcMap["orDash"] = OrDash
	// 渲染后的反应讲解
	funcMap["safeHTML"] = func(s string) template.HTML {
		return template.HTML(s)
	}
	return funcMap
}

// Formula 将化学式中的数字渲染为下标
func Formula(formula string) template.HTML {
	escaped := template.HTMLEscapeString(formula)
	return template.HTML(formulaDigitsRegex.ReplaceAllString(escaped, "<sub>$1</sub>"))
}

// OrDash 可选字段（*string / *float64 / *int）为空时返回 "-"
func OrDash(value any) string {
	switch v := value.(type) {
	case *string:
		if v != nil && *v != "" {
			return *v
		}
	case *float64:
		if v != nil {
			return strconv.FormatFloat(*v, 'f', -1, 64)
		}
	case *int:
		if v != nil {
			return strconv.Itoa(*v)
		}
	case string:
		if v != "" {
			return v
		}
	}
	return "-"
}
