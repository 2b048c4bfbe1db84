package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nickyhof/PlutoQuery/console"
	"github.com/nickyhof/PlutoQuery/db"
)

// Runner runs catalog entries against a data context and prints their
// output.
type Runner struct {
	ctx     *db.Context
	out     *console.Console
	logger  zerolog.Logger
	entries []Entry
}

func NewRunner(ctx *db.Context, out *console.Console, logger zerolog.Logger) *Runner {
	return &Runner{
		ctx:     ctx,
		out:     out,
		logger:  logger,
		entries: Entries(),
	}
}

// Run executes every entry once, in catalog order. It stops at the first
// failing entry and returns its error wrapped with the entry name; reporting
// it is left to the caller.
func (r *Runner) Run() error {
	runID := uuid.NewString()
	logger := r.logger.With().
		Str("run", runID).
		Str("transaction", r.ctx.Transaction().Short()).
		Logger()

	start := time.Now()
	logger.Info().Int("entries", len(r.entries)).Msg("catalog run started")

	for i, entry := range r.entries {
		if i > 0 {
			r.out.Println()
		}
		if err := r.runEntry(logger, entry); err != nil {
			return err
		}
	}

	logger.Info().Dur("took", time.Since(start)).Msg("catalog run finished")
	return nil
}

// RunEntry executes a single entry by name.
func (r *Runner) RunEntry(name string) error {
	entry, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownEntry)
	}
	return r.runEntry(r.logger, entry)
}

func (r *Runner) runEntry(logger zerolog.Logger, entry Entry) error {
	start := time.Now()

	r.out.Println("== " + entry.Title + " ==")
	if err := entry.Run(r.ctx, r.out); err != nil {
		return fmt.Errorf("%s: %w", entry.Name, err)
	}
	if err := r.out.Err(); err != nil {
		return fmt.Errorf("%s: write output: %w", entry.Name, err)
	}

	logger.Debug().Str("entry", entry.Name).Dur("took", time.Since(start)).Msg("entry finished")
	return nil
}
