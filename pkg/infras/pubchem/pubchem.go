// Package pubchem 封装 PubChem PUG REST 接口，将化合物 CID、名称以及药物集合解析为 model.Compound
//
// 对外暴露的查询方法均不返回错误：每一次远程调用失败（网络错误、非 200 状态码、响应无法解析）
// 都会在调用点就地转换为「缺失」，最坏情况下得到仅包含 CID 与结构图地址的降级记录、空列表，
// 或者（药物集合）固定的兜底列表。
package pubchem

import "fmt"

const (
	// DefaultBaseURL PUG REST 接口地址
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

	// ImageURLTemplate 化合物结构图地址模板，仅用于前端展示，不做校验
	ImageURLTemplate = "https://pubchem.ncbi.nlm.nih.gov/rest/pug/compound/cid/%d/PNG"

	// CommonDrugsListKey 常见药物集合的 listkey
	CommonDrugsListKey = "xrxgtpj7tdoofm-KNFSKDLFBGCSGL-UHFFFAOYSA-N"

	// DefaultSearchLimit 名称搜索默认返回数量
	DefaultSearchLimit = 10

	// DefaultDrugsLimit 常见药物默认返回数量
	DefaultDrugsLimit = 20

	// compoundProperties 补充查询的属性集合
	compoundProperties = "MolecularFormula,MolecularWeight,InChI,InChIKey,CanonicalSMILES,IUPACName"
)

// 药物集合不可用时的兜底 CID（2244 为阿司匹林，2519 为咖啡因）
var fallbackDrugCIDs = [...]int64{2244, 5962, 2519, 5790, 4594}

// FallbackDrugCIDs 兜底药物 CID（副本）
func FallbackDrugCIDs() []int64 {
	cids := fallbackDrugCIDs
	return cids[:]
}

// ImageURL 根据 CID 生成结构图地址
func ImageURL(cid int64) string {
	return fmt.Sprintf(ImageURLTemplate, cid)
}
