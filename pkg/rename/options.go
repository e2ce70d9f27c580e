package rename

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Option configures a Renamer.
type Option func(*Renamer)

// WithFs sets the filesystem. Use afero.NewMemMapFs() in tests.
// Default: afero.NewOsFs().
func WithFs(fs afero.Fs) Option {
	return func(r *Renamer) {
		if fs != nil {
			r.fs = fs
		}
	}
}

// WithLogger sets the logger used to report each rename.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renamer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithWorkers limits how many renames run concurrently.
// Default: 4.
func WithWorkers(n int) Option {
	return func(r *Renamer) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithDryRun plans the batch without touching the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(r *Renamer) {
		r.dryRun = dryRun
	}
}
