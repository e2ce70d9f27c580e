package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugify/internal/server"
	"github.com/dmitrymomot/slugify/pkg/logger"
	"github.com/dmitrymomot/slugify/pkg/slug"
)

func (a *app) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the slug API over HTTP",
		Long: `Start an HTTP server exposing GET and POST /slug and GET /health/live.

Requests without a locale use --locale, or the Accept-Language header when
--locale is empty. The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}

	cmd.Flags().String("addr", defaultServeAddress, "listen address")
	cmd.Flags().Duration("shutdown-timeout", 30*time.Second, "graceful shutdown timeout")

	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	shutdownTimeout, err := cmd.Flags().GetDuration("shutdown-timeout")
	if err != nil {
		return err
	}

	// Request scoped logs carry the request ID.
	log := slog.New(logger.WithExtractors(a.logger.Handler(), server.RequestIDExtractor()))

	srv := server.New(
		server.WithAddress(a.cfg.Addr),
		server.WithLogger(log),
		server.WithShutdownTimeout(shutdownTimeout),
		server.WithDefaults(
			slug.ParseMode(a.cfg.Mode),
			slug.ParseLocale(a.cfg.Locale),
			a.cfg.Fallback,
		),
	)
	return srv.Run(cmd.Context())
}
