package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/slugify/pkg/alfred"
	"github.com/dmitrymomot/slugify/pkg/slug"
)

// maxBodyBytes limits POST /slug request bodies.
const maxBodyBytes = 64 << 10

var (
	errMissingText = errors.New("text is required")
	errInvalidBody = errors.New("invalid JSON body")
	errEmptyTable  = errors.New("transliteration table is empty")
	errProbeFailed = errors.New("slug probe returned an unexpected value")
)

// slugRequest is the POST /slug body. Empty fields use the server defaults.
type slugRequest struct {
	Text     string  `json:"text"`
	Mode     string  `json:"mode"`
	Locale   string  `json:"locale"`
	Fallback *string `json:"fallback"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleSlugQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := slugRequest{
		Text:   q.Get("text"),
		Mode:   q.Get("mode"),
		Locale: q.Get("locale"),
	}
	if q.Has("fallback") {
		fb := q.Get("fallback")
		req.Fallback = &fb
	}
	s.respondSlug(w, r, req)
}

func (s *Server) handleSlugJSON(w http.ResponseWriter, r *http.Request) {
	var req slugRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errInvalidBody)
		return
	}
	s.respondSlug(w, r, req)
}

func (s *Server) respondSlug(w http.ResponseWriter, r *http.Request, req slugRequest) {
	if req.Text == "" {
		s.writeError(w, r, http.StatusBadRequest, errMissingText)
		return
	}

	opts := s.options(r, req)
	result := slug.MakeFilename(req.Text, opts...)

	s.logger.DebugContext(r.Context(), "slug generated",
		slog.Int("input_length", len(req.Text)),
		slog.String("slug", result),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := alfred.New(result).Write(w); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to write response", slog.Any("error", err))
	}
}

// options merges request values over the server defaults. Without an explicit
// locale the Accept-Language header is consulted.
func (s *Server) options(r *http.Request, req slugRequest) []slug.Option {
	mode := s.mode
	if req.Mode != "" {
		mode = slug.ParseMode(req.Mode)
	}

	locale := s.locale
	switch {
	case req.Locale != "":
		locale = slug.ParseLocale(req.Locale)
	case locale == slug.LocaleNone:
		locale = localeFromAcceptLanguage(r.Header.Get("Accept-Language"))
	}

	fallback := s.fallback
	if req.Fallback != nil {
		fallback = *req.Fallback
	}

	return []slug.Option{
		slug.WithMode(mode),
		slug.WithLocale(locale),
		slug.WithFallback(fallback),
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.WarnContext(r.Context(), "request rejected",
		slog.Int("status", status),
		slog.Any("error", err),
	)
	writeJSON(w, status, errorResponse{
		Error:     err.Error(),
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// tablesCheck makes sure every locale table builds and the pipeline produces
// the expected slug for a known input.
func tablesCheck(_ context.Context) error {
	for _, l := range append([]slug.Locale{slug.LocaleNone}, slug.Locales...) {
		if slug.TableFor(l).Len() == 0 {
			return fmt.Errorf("%w: %q", errEmptyTable, l)
		}
	}
	if got := slug.Make("Café Œuvre"); got != "cafe-oeuvre" {
		return fmt.Errorf("%w: %q", errProbeFailed, got)
	}
	return nil
}
