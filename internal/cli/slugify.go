package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugify/pkg/alfred"
	"github.com/dmitrymomot/slugify/pkg/rename"
	"github.com/dmitrymomot/slugify/pkg/slug"
)

func (a *app) runText(cmd *cobra.Command, text string) error {
	result := slug.MakeFilename(text, a.cfg.SlugOptions()...)
	a.logger.Debug("slug generated", slog.String("slug", result))

	out := cmd.OutOrStdout()
	if a.cfg.Plain {
		_, err := fmt.Fprintln(out, result)
		return err
	}
	return alfred.New(result).Write(out)
}

func (a *app) runFiles(cmd *cobra.Command, paths []string) error {
	opts := a.cfg.SlugOptions()
	r := rename.New(
		func(base string) string { return slug.MakeFilename(base, opts...) },
		rename.WithFs(a.fs),
		rename.WithLogger(a.logger),
		rename.WithWorkers(a.cfg.Workers),
		rename.WithDryRun(a.cfg.DryRun),
	)

	results, err := r.Rename(cmd.Context(), paths)
	if werr := writeSummary(cmd.OutOrStdout(), results); werr != nil {
		return werr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenameFailures, err)
	}
	return nil
}

// writeSummary prints one line per file followed by the totals.
func writeSummary(w io.Writer, results []rename.Result) error {
	counts := make(map[rename.Status]int, 5)
	for _, res := range results {
		counts[res.Status]++

		var err error
		switch res.Status {
		case rename.StatusRenamed, rename.StatusPlanned:
			_, err = fmt.Fprintf(w, "%-9s %s -> %s\n", res.Status, res.Source, res.Target)
		case rename.StatusUnchanged:
			_, err = fmt.Fprintf(w, "%-9s %s\n", res.Status, res.Source)
		default:
			_, err = fmt.Fprintf(w, "%-9s %s: %s\n", res.Status, res.Source, res.Error)
		}
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d renamed, %d planned, %d unchanged, %d skipped, %d failed\n",
		counts[rename.StatusRenamed],
		counts[rename.StatusPlanned],
		counts[rename.StatusUnchanged],
		counts[rename.StatusSkipped],
		counts[rename.StatusFailed],
	)
	return err
}
