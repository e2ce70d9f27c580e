// Package cli implements the slugify command line: string mode, --files
// batch rename mode and the serve subcommand.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/slugify/pkg/logger"
)

const (
	defaultWorkers      = 4
	sentryFlushTimeout  = 2 * time.Second
	defaultLogLevel     = "warn"
	defaultLogFormat    = "text"
	defaultServeAddress = ":8080"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// app carries state shared by the root command and its subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	logger  *slog.Logger
	fs      afero.Fs
}

// NewRootCommand builds the command tree. Every call returns an independent
// tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	return newRootCommand(afero.NewOsFs())
}

func newRootCommand(fsys afero.Fs) *cobra.Command {
	a := &app{v: viper.New(), logger: logger.NewNope(), fs: fsys}

	cmd := &cobra.Command{
		Use:   "slugify [TEXT...]",
		Short: "Turn text and file names into URL and filesystem safe slugs",
		Long: `slugify converts arbitrary text into a lowercase ASCII slug.

Without --files the arguments are joined with spaces, slugified and printed as
a launcher (Alfred Script Filter) JSON document, or as the bare slug with
--plain. With --files every argument is a path whose base name is renamed to
its slug inside the same directory.`,
		Example: `  slugify "Rapport Annuel.PDF"
  slugify --plain --locale de_DE "Größe"
  slugify --files --dry-run ~/Downloads/*.pdf`,
		Version:           version,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.slugify.yaml or ./.slugify.yaml)")
	pf.StringP("locale", "l", "", "transliteration locale, e.g. de_DE, da_DK, ca, sr_RS")
	pf.StringP("mode", "m", "save", "normalization mode: save or display")
	pf.String("fallback", "", "value used when nothing is left of the input")
	pf.String("log-level", defaultLogLevel, "log level: debug, info, warn or error")
	pf.String("log-format", defaultLogFormat, "log format: json or text")

	f := cmd.Flags()
	f.BoolP("files", "f", false, "treat arguments as paths and rename the files")
	f.BoolP("plain", "p", false, "print only the slug instead of launcher JSON")
	f.Bool("dry-run", false, "with --files, report planned renames without touching files")
	f.IntP("workers", "w", defaultWorkers, "with --files, number of concurrent renames")

	cmd.AddCommand(a.newServeCommand())

	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCommand()
	err := cmd.ExecuteContext(ctx)
	logger.FlushSentry(sentryFlushTimeout)
	if err != nil {
		if !errors.Is(err, ErrRenameFailures) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.v, cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger.NewWithSentry(
		logger.Config{
			Output: cmd.ErrOrStderr(),
			Format: logger.Format(cfg.LogFormat),
			Level:  level,
		},
		logger.SentryConfig{
			DSN:         cfg.SentryDSN,
			Environment: cfg.Environment,
			MinLevel:    slog.LevelError,
		},
	)

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config file loaded", slog.String("path", used))
	}
	return nil
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	if a.cfg.Files {
		return a.runFiles(cmd, args)
	}
	return a.runText(cmd, strings.Join(args, " "))
}
