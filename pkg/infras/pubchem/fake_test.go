package pubchem

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// route 模拟的 PubChem 响应
type route struct {
	status int
	body   string
	delay  time.Duration
}

// fakePubChem 基于 httptest 的 PubChem 模拟服务，按 URL Path 匹配响应，未注册的路径返回 404
type fakePubChem struct {
	srv *httptest.Server

	mu         sync.Mutex
	routes     map[string]route
	hits       map[string]int
	lastHeader http.Header
}

func newFakePubChem(t *testing.T) *fakePubChem {
	t.Helper()

	f := &fakePubChem{routes: map[string]route{}, hits: map[string]int{}}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakePubChem) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	rt, ok := f.routes[r.URL.Path]
	f.hits[r.URL.Path]++
	f.lastHeader = r.Header.Clone()
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"Fault":{"Code":"PUGREST.NotFound","Message":"No CID found"}}`)
		return
	}
	if rt.delay > 0 {
		select {
		case <-time.After(rt.delay):
		case <-r.Context().Done():
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rt.status)
	_, _ = io.WriteString(w, rt.body)
}

func (f *fakePubChem) handle(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = route{status: status, body: body}
}

func (f *fakePubChem) handleSlow(path string, delay time.Duration, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = route{status: http.StatusOK, body: body, delay: delay}
}

func (f *fakePubChem) header() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastHeader
}

func (f *fakePubChem) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

// compound 注册一个可被完整解析的化合物
func (f *fakePubChem) compound(cid int64, formula string) {
	f.handle(compoundPath(cid), http.StatusOK, basicBody(cid))
	f.handle(propertyPath(cid), http.StatusOK, fmt.Sprintf(
		`{"PropertyTable":{"Properties":[{"CID":%d,"MolecularFormula":%q}]}}`, cid, formula,
	))
}

// client 创建指向模拟服务的客户端
func (f *fakePubChem) client(opts ...Option) *Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewClient(append([]Option{
		WithBaseURL(f.srv.URL),
		WithHTTPClient(f.srv.Client()),
		WithLogger(logger),
		WithRateLimit(0),
	}, opts...)...)
}

func compoundPath(cid int64) string {
	return fmt.Sprintf("/compound/cid/%d/JSON", cid)
}

func propertyPath(cid int64) string {
	return fmt.Sprintf("/compound/cid/%d/property/%s/JSON", cid, compoundProperties)
}

func basicBody(cid int64) string {
	return fmt.Sprintf(`{"PC_Compounds":[{"id":{"id":{"cid":%d}}}]}`, cid)
}

func cidListBody(cids ...int64) string {
	body := `{"IdentifierList":{"CID":[`
	for idx, cid := range cids {
		if idx > 0 {
			body += ","
		}
		body += fmt.Sprint(cid)
	}
	return body + `]}}`
}
