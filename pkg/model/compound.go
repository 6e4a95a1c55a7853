package model

import "strconv"

// Compound 化合物（数据来源于 PubChem）
//
// 除 CID 与 ImageURL 外均为可选字段，nil 表示上游未返回或查询失败，
// 仅有 CID 与 ImageURL 的记录是合法的降级结果，而不是错误。
type Compound struct {
	CID              int64    `json:"cid"`
	IUPACName        *string  `json:"iupacName,omitempty"`
	MolecularFormula *string  `json:"molecularFormula,omitempty"`
	MolecularWeight  *float64 `json:"molecularWeight,omitempty"`
	SMILES           *string  `json:"smiles,omitempty"`
	InChI            *string  `json:"inchi,omitempty"`
	InChIKey         *string  `json:"inchiKey,omitempty"`
	ImageURL         string   `json:"imageUrl"`
}

// Compounds 化合物列表
type Compounds []Compound

// DisplayName 展示用名称，没有 IUPAC 名称时使用 CID
func (c Compound) DisplayName() string {
	if c.IUPACName != nil {
		return *c.IUPACName
	}
	return "Compound #" + strconv.FormatInt(c.CID, 10)
}

// Degraded 是否为降级记录（可选字段全部缺失）
func (c Compound) Degraded() bool {
	return c.IUPACName == nil &&
		c.MolecularFormula == nil &&
		c.MolecularWeight == nil &&
		c.SMILES == nil &&
		c.InChI == nil &&
		c.InChIKey == nil
}

// CIDs 获取列表中全部化合物的 CID（保持顺序）
func (cs Compounds) CIDs() []int64 {
	cids := make([]int64, 0, len(cs))
	for _, c := range cs {
		cids = append(cids, c.CID)
	}
	return cids
}
