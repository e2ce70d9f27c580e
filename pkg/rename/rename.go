package rename

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// Status describes what happened to one file.
type Status string

const (
	StatusRenamed   Status = "renamed"
	StatusPlanned   Status = "planned"
	StatusUnchanged Status = "unchanged"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result is the outcome for a single path.
type Result struct {
	Err    error  `json:"-"`
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NameFunc maps a file's base name to its new base name.
type NameFunc func(base string) string

// Renamer renames files inside their own directory using a NameFunc.
type Renamer struct {
	fs      afero.Fs
	name    NameFunc
	logger  *slog.Logger
	workers int
	dryRun  bool
}

// New creates a Renamer.
//
//	r := rename.New(func(base string) string {
//		return slug.MakeFilename(base)
//	})
//	results, err := r.Rename(ctx, os.Args[1:])
func New(name NameFunc, opts ...Option) *Renamer {
	r := &Renamer{
		fs:      afero.NewOsFs(),
		name:    name,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rename renames every path to name(base) in the same directory.
//
// Every path is attempted. Targets are planned in input order first, so when
// two files map to the same name the first one wins and the second is
// skipped with ErrTargetExists; existing files are never overwritten. The
// renames then run concurrently. The returned slice has one Result per path
// in input order; the error joins every per-file failure.
func (r *Renamer) Rename(ctx context.Context, paths []string) ([]Result, error) {
	results := r.plan(paths)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range results {
		res := &results[i]
		if res.Status != StatusPlanned || r.dryRun {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				res.fail(err)
				return nil
			}
			if err := r.fs.Rename(res.Source, res.Target); err != nil {
				res.fail(errors.Join(ErrRenameFailed, err))
				return nil
			}
			res.Status = StatusRenamed
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		switch res.Status {
		case StatusRenamed, StatusPlanned:
			r.logger.Debug("file renamed",
				slog.String("source", res.Source),
				slog.String("target", res.Target),
				slog.Bool("dry_run", r.dryRun),
			)
		case StatusSkipped, StatusFailed:
			r.logger.Warn("file not renamed",
				slog.String("source", res.Source),
				slog.String("target", res.Target),
				slog.Any("error", res.Err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", res.Source, res.Err))
		}
	}

	return results, errors.Join(errs...)
}

// plan resolves targets sequentially so collisions are detected in input order.
func (r *Renamer) plan(paths []string) []Result {
	results := make([]Result, len(paths))
	claimed := make(map[string]struct{}, len(paths))

	for i, src := range paths {
		res := &results[i]
		res.Source = src

		info, err := r.fs.Stat(src)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				err = ErrSourceNotFound
			}
			res.skip(err)
			continue
		}

		base := r.name(filepath.Base(src))
		if base == "" {
			res.skip(ErrEmptyName)
			continue
		}
		res.Target = filepath.Join(filepath.Dir(src), base)

		if res.Target == filepath.Clean(src) {
			res.Status = StatusUnchanged
			continue
		}
		if _, taken := claimed[res.Target]; taken {
			res.skip(ErrTargetExists)
			continue
		}
		if existing, err := r.fs.Stat(res.Target); err == nil && !os.SameFile(info, existing) {
			res.skip(ErrTargetExists)
			continue
		}

		claimed[res.Target] = struct{}{}
		res.Status = StatusPlanned
	}

	return results
}

func (res *Result) skip(err error) {
	res.Status = StatusSkipped
	res.Err = err
	res.Error = err.Error()
}

func (res *Result) fail(err error) {
	res.Status = StatusFailed
	res.Err = err
	res.Error = err.Error()
}
