package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel determines which log levels are sent to Sentry.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes to the base handler and to Sentry.
// With an empty DSN only the base handler is used, so the same code path
// works locally.
func NewWithSentry(cfg Config, sc SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	base := newHandler(cfg)
	if sc.DSN == "" {
		return slog.New(WithExtractors(base, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(WithExtractors(base, extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sc.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(WithExtractors(fanoutHandler{base, sentryHandler}, extractors...))
}

// FlushSentry waits up to timeout for buffered Sentry events to be delivered.
// It returns false when Sentry is not initialized or the timeout is reached.
func FlushSentry(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
