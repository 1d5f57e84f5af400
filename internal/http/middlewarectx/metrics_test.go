package middlewarectx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	notFound := httpRequestsTotal.WithLabelValues(http.MethodGet, "/users/{id}", "404")
	ok := httpRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")
	beforeNotFound := testutil.ToFloat64(notFound)
	beforeOK := testutil.ToFloat64(ok)

	for _, url := range []string{"/users/1", "/users/2", "/health"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, url, nil))
	}

	assert.Equal(t, beforeNotFound+2, testutil.ToFloat64(notFound))
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
}

func TestRoutePattern_NoRouter(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)))
}
