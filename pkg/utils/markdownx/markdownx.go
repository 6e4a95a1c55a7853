package markdownx

import (
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML 将化学反应讲解（markdown）渲染为带 tailwind 样式的 html
func ToHTML(content []byte) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock | parser.SuperSubscript
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(content)

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})

	return wrapTailwindClass(string(markdown.Render(doc, renderer)))
}

// FullMatchHtmlTagClassMap 无属性的标签，直接整体替换
var FullMatchHtmlTagClassMap = map[string]string{
	"p":     "my-2 mx-2",
	"ol":    "pl-1 list-decimal list-inside",
	"ul":    "pl-4 list-disc",
	"li":    "ml-4 my-2",
	"pre":   "my-4",
	"code":  "bg-gray-100 text-teal-700",
	"table": "my-4 table-auto border-collapse",
	// 使用 left-padding + left-border + bg-color 实现 markdown 引用的效果
	"blockquote": "pl-2 py-1 border-l-8 border-teal-200 bg-teal-50",
}

// PrefixMatchHtmlTagClassMap 可能带属性的标签，按前缀替换
var PrefixMatchHtmlTagClassMap = map[string]string{
	"h1":  "mt-6 mb-4 font-semibold text-3xl",
	"h2":  "mt-6 mb-4 font-semibold text-2xl",
	"h3":  "mt-6 mb-4 font-semibold text-xl",
	"h4":  "mt-6 mb-4 font-semibold text-lg",
	"img": "my-6",
	"a":   "text-teal-600",
}

// 由于 code 标签本身自带 class="language-xxx"，因此不能直接替换，只能补充
var codeTagAdditionalClass = "p-4 rounded-xl"

var languageCodeTagRegex = regexp.MustCompile(`<code class="language-[a-zA-Z]+`)

// wrapTailwindClass 为 markdown 转换成的 html 中的标签添加 tailwind css 类
func wrapTailwindClass(htmlContent string) string {
	for tagName, class := range FullMatchHtmlTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+">", "<"+tagName+" class=\""+class+"\">")
	}
	for tagName, class := range PrefixMatchHtmlTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+" ", "<"+tagName+" class=\""+class+"\" ")
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+">", "<"+tagName+" class=\""+class+"\">")
	}
	return languageCodeTagRegex.ReplaceAllString(htmlContent, "$0 "+codeTagAdditionalClass)
}
