package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics agrupa os coletores expostos em /metrics.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	analyses *prometheus.CounterVec
	savings  prometheus.Histogram
}

// NewMetrics cria um registro próprio, permitindo vários servidores no mesmo processo.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billswitch",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "billswitch",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billswitch",
			Name:      "bill_analyses_total",
			Help:      "Bill analyses by outcome.",
		}, []string{"outcome"}),
		savings: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "billswitch",
			Name:      "best_first_year_savings_dollars",
			Help:      "Best first-year net savings found per analysed bill.",
			Buckets:   []float64{-500, 0, 100, 250, 500, 1000, 2000},
		}),
	}
	reg.MustRegister(
		m.requests, m.duration, m.analyses, m.savings,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler expõe o registro no formato de texto do Prometheus.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
