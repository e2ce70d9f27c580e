package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify/pkg/health"
)

func ready(t *testing.T, h http.HandlerFunc) (int, health.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)

	var resp health.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()

		code, resp := ready(t, health.ReadinessHandler(nil))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, health.StatusHealthy, resp.Status)
		assert.Empty(t, resp.Checks)
	})

	t.Run("one failing check", func(t *testing.T) {
		t.Parallel()

		code, resp := ready(t, health.ReadinessHandler(health.Checks{
			"ok":  func(context.Context) error { return nil },
			"bad": func(context.Context) error { return errors.New("boom") },
		}))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, health.Check{Status: health.StatusHealthy}, resp.Checks["ok"])
		assert.Equal(t, health.Check{Status: health.StatusUnhealthy, Error: "boom"}, resp.Checks["bad"])
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		code, resp := ready(t, health.ReadinessHandler(health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(10*time.Millisecond)))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, health.ErrCheckTimeout.Error(), resp.Checks["slow"].Error)
	})

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"bad": func(context.Context) error { return errors.New("down") },
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service Unavailable", rec.Body.String())
	})
}
