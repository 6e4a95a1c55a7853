package pubchem

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/narasux/chemlab/pkg/model"
)

var (
	// ErrNoListKey 药物集合没有返回翻页 token
	ErrNoListKey = errors.New("drug collection: no listkey returned")
	// ErrEmptyCollection 药物集合为空
	ErrEmptyCollection = errors.New("drug collection: empty page")
	// ErrEmptyCompound 基础信息响应中没有化合物
	ErrEmptyCompound = errors.New("compound: empty PC_Compounds")
)

// ResolveByIdentifier 根据 CID 获取化合物
//
// 先确认化合物存在，再查询补充属性；任一步失败都返回仅包含 CID 与结构图地址的降级记录。
func (c *Client) ResolveByIdentifier(ctx context.Context, cid int64) model.Compound {
	compound := model.Compound{CID: cid, ImageURL: ImageURL(cid)}

	var basic compoundResponse
	if err := c.get(ctx, endpointCompound, fmt.Sprintf("/compound/cid/%d/JSON", cid), &basic); err != nil {
		c.logFailure(err, "failed to fetch compound", logrus.Fields{"cid": cid})
		return compound
	}
	if len(basic.PCCompounds) == 0 {
		c.logFailure(ErrEmptyCompound, "failed to fetch compound", logrus.Fields{"cid": cid})
		return compound
	}

	var props propertyResponse
	path := fmt.Sprintf("/compound/cid/%d/property/%s/JSON", cid, compoundProperties)
	if err := c.get(ctx, endpointProperty, path, &props); err != nil {
		c.logFailure(err, "failed to fetch compound properties", logrus.Fields{"cid": cid})
		return compound
	}
	if len(props.PropertyTable.Properties) == 0 {
		return compound
	}

	prop := props.PropertyTable.Properties[0]
	compound.MolecularFormula = optional(prop.MolecularFormula)
	compound.MolecularWeight = prop.MolecularWeight.Ptr()
	compound.IUPACName = optional(prop.IUPACName)
	compound.SMILES = optional(prop.CanonicalSMILES)
	if compound.SMILES == nil {
		compound.SMILES = optional(prop.SMILES)
	}
	compound.InChI = optional(prop.InChI)
	compound.InChIKey = optional(prop.InChIKey)
	return compound
}

// SearchByName 根据名称搜索化合物，limit <= 0 时使用默认值
//
// 搜索失败与无结果一样返回空列表；结果顺序与 PubChem 返回的 CID 顺序一致。
func (c *Client) SearchByName(ctx context.Context, query string, limit int) model.Compounds {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return model.Compounds{}
	}

	var ids identifierListResponse
	path := fmt.Sprintf("/compound/name/%s/cids/JSON", url.PathEscape(query))
	if err := c.get(ctx, endpointName, path, &ids); err != nil {
		c.logFailure(err, "failed to search compounds", logrus.Fields{"query": query})
		return model.Compounds{}
	}
	return c.resolveAll(ctx, head(ids.IdentifierList.CID, limit))
}

// ListCommonDrugs 获取常见药物，limit <= 0 时使用默认值
//
// 药物集合不可用（listkey 失效、翻页失败、集合为空）时返回固定的兜底药物列表。
func (c *Client) ListCommonDrugs(ctx context.Context, limit int) model.Compounds {
	if limit <= 0 {
		limit = DefaultDrugsLimit
	}

	cids, err := c.listCommonDrugCIDs(ctx)
	if err != nil {
		c.logFailure(err, "drug collection unavailable, fall back to built-in list", logrus.Fields{
			"listKey": CommonDrugsListKey,
		})
		drugsFallbackTotal.Inc()
		return c.resolveAll(ctx, FallbackDrugCIDs())
	}
	return c.resolveAll(ctx, head(cids, limit))
}

// 通过固定的 listkey 换取翻页 token，再获取集合中的 CID
func (c *Client) listCommonDrugCIDs(ctx context.Context) ([]int64, error) {
	var token identifierListResponse
	path := fmt.Sprintf("/compound/listkey/%s/cids/JSON?list_return=listkey", CommonDrugsListKey)
	if err := c.get(ctx, endpointListKey, path, &token); err != nil {
		return nil, err
	}
	listKey := token.IdentifierList.ListKey
	if listKey == "" {
		return nil, ErrNoListKey
	}

	var page identifierListResponse
	path = fmt.Sprintf("/compound/listkey/%s/cids/JSON", url.PathEscape(listKey))
	if err := c.get(ctx, endpointListKeyPage, path, &page); err != nil {
		return nil, err
	}
	// 药物列表不返回空结果：集合为空与集合不可用一样使用兜底列表
	if len(page.IdentifierList.CID) == 0 {
		return nil, ErrEmptyCollection
	}
	return page.IdentifierList.CID, nil
}

// 并发获取化合物详情，结果按 cids 的顺序写入对应下标，与完成先后无关
func (c *Client) resolveAll(ctx context.Context, cids []int64) model.Compounds {
	compounds := make(model.Compounds, len(cids))

	var g errgroup.Group
	for idx, cid := range cids {
		g.Go(func() error {
			compounds[idx] = c.ResolveByIdentifier(ctx, cid)
			return nil
		})
	}
	// ResolveByIdentifier 不会失败，Wait 只用于等待全部完成
	_ = g.Wait()

	return compounds
}

func head(cids []int64, limit int) []int64 {
	if len(cids) > limit {
		return cids[:limit]
	}
	return cids
}
