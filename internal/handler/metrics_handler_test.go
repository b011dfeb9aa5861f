package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/pips-site-api/internal/service"
)

type pingStub struct{ err error }

func (p pingStub) Ping(ctx context.Context) error { return p.err }

func TestMetricsHandlerReady(t *testing.T) {
	h := NewMetricsHandler(service.NewMetricsService(), pingStub{}, "memory")
	c, w := newContext(http.MethodGet, "/ready", "")
	h.Ready(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"memory"`)

	h = NewMetricsHandler(service.NewMetricsService(), pingStub{err: errors.New("connection refused")}, "redis")
	c, w = newContext(http.MethodGet, "/ready", "")
	h.Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsHandlerPrometheus(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.RecordSubmission("contact", service.SubmissionAccepted)
	h := NewMetricsHandler(metrics, nil, "memory")

	c, w := newContext(http.MethodGet, "/metrics", "")
	h.Prometheus(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `form_submissions_total{form="contact",outcome="accepted"} 1`)

	c, w = newContext(http.MethodGet, "/admin/metrics", "")
	h.Snapshot(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted":1`)
}

func TestMetricsHandlerWithoutService(t *testing.T) {
	h := NewMetricsHandler(nil, nil, "")
	c, w := newContext(http.MethodGet, "/metrics", "")
	h.Prometheus(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
