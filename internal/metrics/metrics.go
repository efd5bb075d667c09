// 包 metrics：统一注册并暴露查询引擎的 Prometheus 指标
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xdb_queries_total",
		Help: "Total number of Searcher.Search calls, by policy",
	}, []string{"policy"})
	EmptyResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xdb_empty_results_total",
		Help: "Total number of queries that matched no range, by policy",
	}, []string{"policy"})
	QueryErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xdb_query_errors_total",
		Help: "Total number of queries that returned an error, by policy",
	}, []string{"policy"})
	QueryDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "xdb_query_duration_ms",
		Help:    "Query duration in milliseconds, by policy",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 25},
	}, []string{"policy"})
	QueryIOCount = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "xdb_query_io_count",
		Help:    "Physical reads issued per query, by policy",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
	}, []string{"policy"})
)

func init() {
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(EmptyResultsTotal)
	prometheus.MustRegister(QueryErrorsTotal)
	prometheus.MustRegister(QueryDurationMs)
	prometheus.MustRegister(QueryIOCount)
}

// 文档注释：返回 Prometheus 指标监听器
// 背景：统一暴露注册指标到 /metrics 路径，供 cmd/xdbquery 的 -metrics-addr 挂载。
func Handler() http.Handler { return promhttp.Handler() }
