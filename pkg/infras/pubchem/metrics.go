package pubchem

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 请求结果标签
const (
	resultOK    = "ok"
	resultError = "error"
)

// 接口标签
const (
	endpointCompound    = "compound"
	endpointProperty    = "property"
	endpointName        = "name"
	endpointListKey     = "listkey"
	endpointListKeyPage = "listkey_page"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chemlab",
		Subsystem: "pubchem",
		Name:      "requests_total",
		Help:      "Number of requests sent to PubChem, partitioned by endpoint and result.",
	}, []string{"endpoint", "result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chemlab",
		Subsystem: "pubchem",
		Name:      "request_duration_seconds",
		Help:      "Latency of requests sent to PubChem.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	drugsFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chemlab",
		Subsystem: "pubchem",
		Name:      "drugs_fallback_total",
		Help:      "Number of times the common drugs listing fell back to the built-in compound list.",
	})
)
