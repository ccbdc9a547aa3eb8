package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		wantBody   string
	}{
		{name: "no database", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "database up", db: pingerFunc(func(context.Context) error { return nil }), wantStatus: http.StatusOK, wantBody: `{"status":"ok","database":"ok"}`},
		{name: "database down", db: pingerFunc(func(context.Context) error { return errors.New("refused") }), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"degraded","database":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRouter(RouterDeps{Employees: &stubUseCase{}, DB: tt.db, FireRateLimit: "10-M"})
			require.NoError(t, err)

			w := do(r, http.MethodGet, "/healthz", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "hr_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	r, err := NewRouter(RouterDeps{Employees: &stubUseCase{}, Gatherer: reg, FireRateLimit: "10-M"})
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hr_test_total 1")
}
