package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	Namespace string
	Subsystem string
	// 默认注册到 prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

func NewMetricsBuilder(namespace, subsystem string) *MetricsBuilder {
	return &MetricsBuilder{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Registerer: prometheus.DefaultRegisterer,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	factory := promauto.With(b.Registerer)
	labels := []string{"method", "path", "status_code"}
	summary := factory.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP 请求的响应时间",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	counter := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP 请求数量",
	}, labels)
	// SSE 连接会一直占着，用这个看当前有多少长连接
	active := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_active_requests",
		Help:      "正在处理的 HTTP 请求数量",
	})
	return func(ctx *gin.Context) {
		start := time.Now()
		active.Inc()
		defer active.Dec()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没有匹配上的路由，避免把任意路径都变成一个标签
			path = "unknown"
		}
		lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		summary.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		counter.WithLabelValues(lvs...).Inc()
	}
}
