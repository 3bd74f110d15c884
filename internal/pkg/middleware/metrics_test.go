package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	builder := NewMetricsBuilder("hows", "web")
	builder.Registerer = reg

	server := gin.New()
	server.Use(builder.Build())
	server.GET("/offers/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/offers/1", "/offers/2", "/missing"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	mfs, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "hows_web_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "path" {
					counts[l.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, map[string]float64{
		"/offers/:id": 2,
		"unknown":     1,
	}, counts)
	cnt, err := testutil.GatherAndCount(reg, "hows_web_http_active_requests")
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)
}
