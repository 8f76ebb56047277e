package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler(func(ctx context.Context) error { return nil })(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = httptest.NewRecorder()
	HealthHandler(func(ctx context.Context) error { return errors.New("redis down") })(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "redis down")
}

func TestDashboard_Register(t *testing.T) {
	reg := prometheus.NewRegistry()
	d := NewDashboard()
	require.NotPanics(t, func() { d.MustRegister(reg) })

	d.Renders.WithLabelValues("http").Inc()
	d.DerivationErrors.WithLabelValues("profit").Add(2)
	assert.Equal(t, 1.0, testutil.ToFloat64(d.Renders.WithLabelValues("http")))
	assert.Equal(t, 2.0, testutil.ToFloat64(d.DerivationErrors.WithLabelValues("profit")))

	assert.Panics(t, func() { d.MustRegister(reg) })
}
