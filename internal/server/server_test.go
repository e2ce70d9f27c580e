package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify/internal/server"
	"github.com/dmitrymomot/slugify/pkg/alfred"
	"github.com/dmitrymomot/slugify/pkg/slug"
)

func decodeSlug(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp alfred.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Slugify", resp.Items[0].Title)
	assert.Equal(t, resp.Variables.Slug, resp.Items[0].Arg)
	return resp.Variables.Slug
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := server.New().Handler()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy","checks":{"tables":{"status":"healthy"}}}`, rec.Body.String())
	})
}

func TestSlugQuery(t *testing.T) {
	t.Parallel()

	h := server.New().Handler()

	tests := []struct {
		name           string
		query          url.Values
		acceptLanguage string
		expected       string
	}{
		{
			name:     "plain text",
			query:    url.Values{"text": {"Hello World"}},
			expected: "hello-world",
		},
		{
			name:     "file name keeps extension",
			query:    url.Values{"text": {"Rapport Annuel.PDF"}},
			expected: "rapport-annuel.pdf",
		},
		{
			name:     "explicit locale",
			query:    url.Values{"text": {"Größe"}, "locale": {"de-DE"}},
			expected: "groesse",
		},
		{
			name:           "accept language picks locale",
			query:          url.Values{"text": {"Größe"}},
			acceptLanguage: "de-DE,de;q=0.9,en;q=0.8",
			expected:       "groesse",
		},
		{
			name:           "explicit locale wins over header",
			query:          url.Values{"text": {"Größe"}, "locale": {"fr"}},
			acceptLanguage: "de-DE",
			expected:       "grose",
		},
		{
			name:     "base table without locale",
			query:    url.Values{"text": {"Größe"}},
			expected: "grose",
		},
		{
			name:     "fallback",
			query:    url.Values{"text": {"***"}, "fallback": {"untitled"}},
			expected: "untitled",
		},
		{
			name:     "display mode keeps accents encoded",
			query:    url.Values{"text": {"Café"}, "mode": {"display"}},
			expected: "caf%c3%a9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/slug?"+tt.query.Encode(), nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, decodeSlug(t, rec))
		})
	}
}

func TestSlugQueryMissingText(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	server.New().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slug", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "text is required", body["error"])
	assert.NotEmpty(t, body["request_id"])
	assert.Equal(t, body["request_id"], rec.Header().Get("X-Request-ID"))
}

func TestSlugJSON(t *testing.T) {
	t.Parallel()

	h := server.New(
		server.WithDefaults(slug.ModeSave, slug.LocaleDanish, "fallback"),
	).Handler()

	t.Run("server defaults", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/slug", strings.NewReader(`{"text":"Ærø"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "aeroe", decodeSlug(t, rec))
	})

	t.Run("default fallback", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/slug", strings.NewReader(`{"text":"!!!"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "fallback", decodeSlug(t, rec))
	})

	t.Run("empty fallback overrides default", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/slug", strings.NewReader(`{"text":"!!!","fallback":""}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, decodeSlug(t, rec))
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/slug", strings.NewReader(`{"text":`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid JSON body")
	})
}

func TestRequestIDPropagation(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("X-Correlation-ID", "upstream-id")
	rec := httptest.NewRecorder()
	server.New().Handler().ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
}
