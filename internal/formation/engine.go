package formation

import (
	"log/slog"
	"math/rand/v2"

	"github.com/teamform/teamform/internal/submission"
)

// Engine forms teams and allocates projects for one batch of submissions at a
// time. An Engine holds no per-batch state and may be shared between
// goroutines; the random source passed to each call may not.
type Engine struct {
	columns submission.Columns
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithColumns overrides the raw row column names.
func WithColumns(cols submission.Columns) Option {
	return func(e *Engine) {
		e.columns = cols
	}
}

// WithLogger sets the logger used for stage summaries.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine reading submission.DefaultColumns.
func New(opts ...Option) *Engine {
	e := &Engine{
		columns: submission.DefaultColumns(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Outcome is a Result together with its Summary.
type Outcome struct {
	Result  Result
	Summary Summary
}

// Process runs the whole pipeline over raw rows.
func (e *Engine) Process(raws []map[string]string, rng *rand.Rand) Result {
	return e.Run(raws, rng).Result
}

// Run is Process that also returns the batch summary.
func (e *Engine) Run(raws []map[string]string, rng *rand.Rand) Outcome {
	rows := submission.NormalizeAll(raws, e.columns)
	registry := submission.CollectParticipants(rows)

	classified := Classify(rows)
	e.logger.Debug("teams classified",
		"rows", len(rows),
		"valid", len(classified.Valid),
		"invalid", len(classified.Invalid),
		"dissolved", classified.Pool.Len(),
	)

	repaired := Repair(classified, rng)
	settled := Settle(repaired)
	e.logger.Debug("teams completed",
		"synthesized", len(settled.Other),
		"unassigned", settled.Pool.Len(),
	)

	allocated := Allocate(settled, rng)
	res := Assemble(allocated)
	summary := Summarize(res, registry)
	e.logger.Debug("projects allocated",
		"catalog", len(Catalog(allocated)),
		"unique", summary.UniqueProjects,
	)

	return Outcome{Result: res, Summary: summary}
}
