package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/narasux/chemlab/pkg/infras/pubchem"
	"github.com/narasux/chemlab/pkg/loader"
	"github.com/narasux/chemlab/pkg/model"
	"github.com/narasux/chemlab/pkg/storage"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveByIdentifier(ctx context.Context, cid int64) model.Compound {
	return m.Called(ctx, cid).Get(0).(model.Compound)
}

func (m *mockResolver) SearchByName(ctx context.Context, query string, limit int) model.Compounds {
	return m.Called(ctx, query, limit).Get(0).(model.Compounds)
}

func (m *mockResolver) ListCommonDrugs(ctx context.Context, limit int) model.Compounds {
	return m.Called(ctx, limit).Get(0).(model.Compounds)
}

type apiResponse struct {
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"requestID"`
}

type listResult[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

var (
	aspirin = model.Compound{
		CID:              2244,
		IUPACName:        lo.ToPtr("2-acetyloxybenzoic acid"),
		MolecularFormula: lo.ToPtr("C9H8O4"),
		MolecularWeight:  lo.ToPtr(180.16),
		ImageURL:         pubchem.ImageURL(2244),
	}
	caffeine = model.Compound{
		CID:              2519,
		IUPACName:        lo.ToPtr("1,3,7-trimethylpurine-2,6-dione"),
		MolecularFormula: lo.ToPtr("C8H10N4O2"),
		ImageURL:         pubchem.ImageURL(2519),
	}
)

func TestMain(m *testing.M) {
	data, err := loader.NewWithBaseDir("../../data").Exec()
	if err != nil {
		panic(err)
	}
	storage.ReactionData = data
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, *mockResolver) {
	t.Helper()

	resolver := &mockResolver{}
	storage.Compounds = resolver
	t.Cleanup(func() {
		resolver.AssertExpectations(t)
		storage.Compounds = nil
	})
	return New(), resolver
}

func serve(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)

	var data T
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

func TestWebPages(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, tc := range []struct {
		target   string
		status   int
		contains []string
	}{
		{"/", http.StatusOK, []string{"ChemLab", "36 elements"}},
		{"/home", http.StatusOK, []string{"Periodic Table"}},
		{"/elements", http.StatusOK, []string{`href="/elements/Na"`, "bg-element-alkali-metal"}},
		{"/elements/na", http.StatusOK, []string{"Sodium", "[Ne] 3s¹"}},
		{"/elements/26", http.StatusOK, []string{"Iron"}},
		{"/elements/Xx", http.StatusNotFound, []string{"404"}},
		{"/reactions", http.StatusOK, []string{"Water Formation", "Electrolysis of Water"}},
		{"/reactions/water-formation", http.StatusOK, []string{"Water Formation", "<sub>2</sub>", pubchem.ImageURL(962)}},
		{"/reactions/not-exists", http.StatusNotFound, []string{"404"}},
		{"/not-exists", http.StatusNotFound, []string{"404"}},
		{"/robots.txt", http.StatusOK, []string{"User-agent"}},
		{"/static/css/elements.css", http.StatusOK, []string{"bg-element-halogen"}},
	} {
		t.Run(tc.target, func(t *testing.T) {
			w := serve(r, http.MethodGet, tc.target)
			assert.Equal(t, tc.status, w.Code)
			for _, s := range tc.contains {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestReactionsPageFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/reactions?type=synthesis")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Salt Formation")
	assert.NotContains(t, w.Body.String(), "Electrolysis of Water")

	w = serve(r, http.MethodGet, "/reactions?q=precipitate")
	assert.Contains(t, w.Body.String(), "Silver Chloride Precipitation")
	assert.NotContains(t, w.Body.String(), "Water Formation")
}

func TestCompoundPages(t *testing.T) {
	r, resolver := newTestRouter(t)

	// 未指定关键字时不请求上游
	w := serve(r, http.MethodGet, "/compounds")
	assert.Equal(t, http.StatusOK, w.Code)
	resolver.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything, mock.Anything)

	resolver.On("SearchByName", mock.Anything, "caffeine", pubchem.DefaultSearchLimit).
		Return(model.Compounds{caffeine}).Once()
	w = serve(r, http.MethodGet, "/compounds?q=caffeine")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1,3,7-trimethylpurine-2,6-dione")
	assert.Contains(t, w.Body.String(), "C<sub>8</sub>H<sub>10</sub>N<sub>4</sub>O<sub>2</sub>")

	resolver.On("SearchByName", mock.Anything, "nothing", pubchem.DefaultSearchLimit).
		Return(model.Compounds{}).Once()
	w = serve(r, http.MethodGet, "/compounds?q=nothing")
	assert.Contains(t, w.Body.String(), "No compounds found")

	resolver.On("ResolveByIdentifier", mock.Anything, int64(2244)).Return(aspirin).Once()
	w = serve(r, http.MethodGet, "/compounds/2244")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2-acetyloxybenzoic acid")
	assert.Contains(t, w.Body.String(), "180.16")
	assert.NotContains(t, w.Body.String(), "temporarily unavailable")

	// 降级记录仍然可以展示结构图
	degraded := model.Compound{CID: 5962, ImageURL: pubchem.ImageURL(5962)}
	resolver.On("ResolveByIdentifier", mock.Anything, int64(5962)).Return(degraded).Once()
	w = serve(r, http.MethodGet, "/compounds/5962")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Compound #5962")
	assert.Contains(t, w.Body.String(), "temporarily unavailable")
	assert.Contains(t, w.Body.String(), pubchem.ImageURL(5962))

	w = serve(r, http.MethodGet, "/compounds/abc")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDrugsPage(t *testing.T) {
	r, resolver := newTestRouter(t)

	resolver.On("ListCommonDrugs", mock.Anything, 12).Return(model.Compounds{aspirin, caffeine}).Once()
	w := serve(r, http.MethodGet, "/drugs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2-acetyloxybenzoic acid")
	assert.Contains(t, w.Body.String(), "1,3,7-trimethylpurine-2,6-dione")

	// 搜索结果替换常见药物列表
	resolver.On("SearchByName", mock.Anything, "aspirin", 12).Return(model.Compounds{aspirin}).Once()
	w = serve(r, http.MethodGet, "/drugs?q=aspirin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2-acetyloxybenzoic acid")
	assert.NotContains(t, w.Body.String(), "1,3,7-trimethylpurine-2,6-dione")
}

func TestElementAPIs(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/apis/elements")
	assert.Equal(t, http.StatusOK, w.Code)
	elements := decode[listResult[model.Element]](t, w)
	assert.Equal(t, 36, elements.Count)
	assert.Len(t, elements.Results, 36)

	w = serve(r, http.MethodGet, "/apis/elements?category=halogen")
	halogens := decode[listResult[model.Element]](t, w)
	assert.Equal(t, []string{"F", "Cl", "Br"}, lo.Map(halogens.Results, func(e model.Element, _ int) string {
		return e.Symbol
	}))

	for _, key := range []string{"Na", "na", "NA", "11"} {
		w = serve(r, http.MethodGet, "/apis/elements/"+key)
		assert.Equal(t, http.StatusOK, w.Code, key)
		element := decode[model.Element](t, w)
		assert.Equal(t, 11, element.Number)
		assert.Equal(t, "Sodium", element.Name)
	}

	for _, key := range []string{"Xx", "0", "37"} {
		w = serve(r, http.MethodGet, "/apis/elements/"+key)
		assert.Equal(t, http.StatusNotFound, w.Code, key)
	}
}

func TestCompoundAPIs(t *testing.T) {
	r, resolver := newTestRouter(t)

	resolver.On("SearchByName", mock.Anything, "aspirin", 3).Return(model.Compounds{aspirin}).Once()
	w := serve(r, http.MethodGet, "/apis/compounds?q=aspirin&limit=3")
	assert.Equal(t, http.StatusOK, w.Code)
	compounds := decode[listResult[model.Compound]](t, w)
	assert.Equal(t, 1, compounds.Count)
	assert.Equal(t, int64(2244), compounds.Results[0].CID)
	assert.Equal(t, "C9H8O4", *compounds.Results[0].MolecularFormula)

	// limit 限制在 [1, 50]
	resolver.On("SearchByName", mock.Anything, "salt", 50).Return(model.Compounds{}).Once()
	w = serve(r, http.MethodGet, "/apis/compounds?q=salt&limit=1000")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[listResult[model.Compound]](t, w).Count)

	w = serve(r, http.MethodGet, "/apis/compounds")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resolver.On("ResolveByIdentifier", mock.Anything, int64(2244)).Return(aspirin).Once()
	w = serve(r, http.MethodGet, "/apis/compounds/2244")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, aspirin, decode[model.Compound](t, w))

	for _, cid := range []string{"abc", "0", "-1"} {
		w = serve(r, http.MethodGet, "/apis/compounds/"+cid)
		assert.Equal(t, http.StatusBadRequest, w.Code, cid)
	}
}

func TestDrugAPI(t *testing.T) {
	r, resolver := newTestRouter(t)

	resolver.On("ListCommonDrugs", mock.Anything, pubchem.DefaultDrugsLimit).
		Return(model.Compounds{aspirin, caffeine}).Once()
	w := serve(r, http.MethodGet, "/apis/drugs")
	assert.Equal(t, http.StatusOK, w.Code)
	drugs := decode[listResult[model.Compound]](t, w)
	assert.Equal(t, []int64{2244, 2519}, model.Compounds(drugs.Results).CIDs())

	resolver.On("ListCommonDrugs", mock.Anything, 5).Return(model.Compounds{aspirin}).Once()
	w = serve(r, http.MethodGet, "/apis/drugs?limit=5")
	assert.Equal(t, 1, decode[listResult[model.Compound]](t, w).Count)
}

func TestReactionAPIs(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/apis/reactions")
	assert.Equal(t, http.StatusOK, w.Code)
	reactions := decode[listResult[model.Reaction]](t, w)
	assert.Equal(t, len(storage.ReactionData.Reactions), reactions.Count)

	w = serve(r, http.MethodGet, "/apis/reactions?type=decomposition")
	reactions = decode[listResult[model.Reaction]](t, w)
	require.Equal(t, 1, reactions.Count)
	assert.Equal(t, "water-electrolysis", reactions.Results[0].ID)

	// 页码超出范围时返回空列表，count 仍为总数
	w = serve(r, http.MethodGet, "/apis/reactions?page_num=100")
	reactions = decode[listResult[model.Reaction]](t, w)
	assert.Equal(t, len(storage.ReactionData.Reactions), reactions.Count)
	assert.Empty(t, reactions.Results)

	// 超出 int 范围的页码按第一页处理
	w = serve(r, http.MethodGet, "/apis/reactions?page_num=99999999999999999999")
	assert.Equal(t, http.StatusOK, w.Code)
	reactions = decode[listResult[model.Reaction]](t, w)
	assert.Len(t, reactions.Results, len(storage.ReactionData.Reactions))

	w = serve(r, http.MethodGet, "/apis/reactions/salt-formation")
	assert.Equal(t, http.StatusOK, w.Code)
	reaction := decode[model.Reaction](t, w)
	assert.Equal(t, []int64{5360545, 24526}, reaction.Reactants.CIDs())
	assert.Equal(t, []int64{5234}, reaction.Products.CIDs())

	w = serve(r, http.MethodGet, "/apis/reactions/not-exists")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeCompoundWithoutDatabase(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodPost, "/apis/compounds/2244/like")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestOpsEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","reactions":true,"database":false}`, w.Body.String())

	w = serve(r, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")

	w = serve(r, http.MethodGet, "/rss")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<feed")
	assert.Contains(t, w.Body.String(), "/reactions/water-formation")
}
