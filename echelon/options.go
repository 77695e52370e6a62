// SPDX-License-Identifier: MIT

// Package echelon: functional configuration of the reducer.
//
// Options are resolved once per Reducer; there is no process-wide state.
// Constructors panic only on nonsensical values (programmer error).
package echelon

const (
	// DefaultIgnoredColumns reduces over every column.
	DefaultIgnoredColumns = 0

	// DefaultMaxSteps selects a budget derived from the matrix shape
	// (see stepBudget); any positive value is used verbatim.
	DefaultMaxSteps = 0
)

const (
	panicIgnoredColumnsNegative = "echelon: WithIgnoredColumns: n must be >= 0"
	panicMaxStepsNegative       = "echelon: WithMaxSteps: n must be >= 0"
)

// Option mutates reducer options.
type Option func(*Options)

// Options is the resolved reducer configuration.
type Options struct {
	ignoredColumns int
	maxSteps       int
}

// IgnoredColumns returns the number of trailing columns excluded from pivot search.
func (o Options) IgnoredColumns() int { return o.ignoredColumns }

// MaxSteps returns the configured step budget (0 = derived from shape).
func (o Options) MaxSteps() int { return o.maxSteps }

// WithIgnoredColumns excludes the last n columns from pivot search. The
// ignored block is still transformed by every row operation, which is what
// augmented systems ([A | b], [A | I]) rely on.
func WithIgnoredColumns(n int) Option {
	if n < 0 {
		panic(panicIgnoredColumnsNegative)
	}

	return func(o *Options) { o.ignoredColumns = n }
}

// WithMaxSteps bounds the number of row operations a single reduction may
// apply. Exceeding it returns ErrNoProgress.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(panicMaxStepsNegative)
	}

	return func(o *Options) { o.maxSteps = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{ignoredColumns: DefaultIgnoredColumns, maxSteps: DefaultMaxSteps}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// stepBudget is a generous upper bound on the row operations needed for a
// rows×cols reduction: every phase touches each (row, row) pair at most once
// per pivot column.
func stepBudget(rows, cols int) int {
	return 4*rows*rows*(cols+1) + 16
}
