package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_LabelsByRoute(t *testing.T) {
	m := New()
	r := gin.New()
	r.Use(m.Middleware("/metrics"))
	r.GET("/api/news/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news/"+id, nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/news/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "madrasah_http_requests_total"))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/metrics", "200")))
}

func TestCounters(t *testing.T) {
	m := New()
	m.RecordSubmission(SubmissionContact)
	m.RecordSubmission(SubmissionContact)
	m.RecordLogin(true)
	m.RecordLogin(false)
	m.RecordLogin(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues(SubmissionContact)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("failure")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.RecordSubmission(SubmissionAlumni)
		nilMetrics.RecordLogin(true)
	})
}
