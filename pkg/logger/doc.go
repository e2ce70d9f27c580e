// Package logger provides structured logging with context extraction and
// optional Sentry reporting.
//
// It is a thin layer over log/slog:
//   - Context extractors inject request scoped values (request IDs) into every
//     record logged with a context.
//   - NewWithSentry sends warnings and errors to Sentry next to the regular
//     output and falls back to plain logging when no DSN is configured.
//
// # Basic Usage
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(logger.Config{Level: slog.LevelDebug}, requestID)
//	log.InfoContext(ctx, "slug generated", slog.String("slug", s))
//	// {"level":"INFO","msg":"slug generated","slug":"hello-world","request_id":"..."}
//
// Output goes to os.Stderr unless Config.Output is set, which keeps stdout
// free for command output such as launcher JSON.
//
// # Sentry
//
//	log := logger.NewWithSentry(cfg, logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//	defer logger.FlushSentry(2 * time.Second)
//
// Errors create Sentry issues; warnings are stored as logs for context.
package logger
