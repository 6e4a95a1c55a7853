package pubchem

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// compoundResponse 匹配 /compound/cid/{cid}/JSON，仅用于确认化合物存在
type compoundResponse struct {
	PCCompounds []json.RawMessage `json:"PC_Compounds"`
}

// propertyResponse 匹配 /compound/cid/{cid}/property/{props}/JSON
type propertyResponse struct {
	PropertyTable struct {
		Properties []compoundProperty `json:"Properties"`
	} `json:"PropertyTable"`
}

// compoundProperty 属性表中的单条记录，新版接口中 CanonicalSMILES 被 SMILES 取代，两者都需要兼容
type compoundProperty struct {
	CID              int64      `json:"CID"`
	MolecularFormula string     `json:"MolecularFormula"`
	MolecularWeight  flexNumber `json:"MolecularWeight"`
	InChI            string     `json:"InChI"`
	InChIKey         string     `json:"InChIKey"`
	CanonicalSMILES  string     `json:"CanonicalSMILES"`
	SMILES           string     `json:"SMILES"`
	IUPACName        string     `json:"IUPACName"`
}

// identifierListResponse 匹配 name / listkey 查询的 cids 响应
type identifierListResponse struct {
	IdentifierList struct {
		CID     []int64 `json:"CID"`
		ListKey string  `json:"ListKey"`
		Size    int     `json:"Size"`
	} `json:"IdentifierList"`
}

// flexNumber PubChem 的分子量可能以字符串（"180.16"）或数字形式返回
//
// 无法解析、非有限值（NaN / Inf）以及非正数均视为缺失。
type flexNumber struct {
	value *float64
}

// UnmarshalJSON ...
func (n *flexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return nil
	}
	n.value = &value
	return nil
}

// Ptr 返回解析结果，nil 表示缺失
func (n flexNumber) Ptr() *float64 {
	return n.value
}

// 空字符串视为缺失
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
