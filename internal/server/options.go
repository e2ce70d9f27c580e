package server

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/slugify/pkg/slug"
)

// Option configures the server.
type Option func(*Server)

// WithAddress sets the listen address.
// Default: ":8080".
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.address = addr
		}
	}
}

// WithLogger sets the logger for request and lifecycle logs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown.
// Default: 30 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithDefaults sets the slug options used when a request does not specify them.
// A zero Locale lets the Accept-Language header decide.
func WithDefaults(mode slug.Mode, locale slug.Locale, fallback string) Option {
	return func(s *Server) {
		s.mode = mode
		s.locale = locale
		s.fallback = fallback
	}
}
