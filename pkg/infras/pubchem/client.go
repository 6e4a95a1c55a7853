package pubchem

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/logging"
)

// ErrUnexpectedStatus 上游返回非 200 状态码
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Client PubChem 客户端，可并发使用
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *logrus.Logger
}

// Option 客户端配置项
type Option func(*Client)

// WithBaseURL 指定接口地址（测试时指向 httptest.Server）
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient 指定 http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent 指定 User-Agent
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRateLimit 限制每秒请求数，rps <= 0 表示不限制
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = newLimiter(rps)
	}
}

// WithLogger 指定日志对象
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient 创建客户端，默认配置来自环境变量
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: envs.PubChemTimeout},
		baseURL:    strings.TrimRight(envs.PubChemBaseURL, "/"),
		userAgent:  envs.PubChemUserAgent,
		limiter:    newLimiter(envs.PubChemRPS),
		logger:     logging.GetUpstreamLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
}

// 发起 GET 请求并将响应解析到 target，任意环节失败都返回 error，由调用方决定如何降级
func (c *Client) get(ctx context.Context, endpoint, path string, target any) (err error) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		result := resultOK
		if err != nil {
			result = resultError
		}
		requestsTotal.WithLabelValues(endpoint, result).Inc()
	}()

	if err = c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limiter")
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "new request %s", url)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrUnexpectedStatus, "request %s: %d", url, resp.StatusCode)
	}
	if err = json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "decode response of %s", url)
	}
	return nil
}

// 记录上游调用失败（降级不会向调用方暴露错误，只能通过日志和指标观测）
func (c *Client) logFailure(err error, msg string, fields logrus.Fields) {
	c.logger.WithFields(fields).WithError(err).Warn(msg)
}
