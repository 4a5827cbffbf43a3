// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/currentflow/matrix"
)

// DefaultWeightKey selects core.Edge.Weight on weighted graphs.
const DefaultWeightKey = "weight"

// Option configures a betweenness computation.
// Invalid values are recorded and surface as ErrOptionViolation when the
// computation starts.
type Option func(*Options)

// Options holds the resolved configuration of one call.
type Options struct {
	// Normalized divides by (N-1)(N-2) instead of 2.
	Normalized bool

	// WeightKey names the conductance source; see conductance.
	WeightKey string

	// Precision is the floating-point width of the Laplacian and its solves.
	Precision matrix.Precision

	// Solver selects the inverse-Laplacian backend.
	Solver matrix.SolverKind

	// Logger receives debug events. Never nil after DefaultOptions.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns normalized output, the "weight" key, float64
// precision, the lu solver and a logger that discards everything.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Options{
		Normalized: true,
		WeightKey:  DefaultWeightKey,
		Precision:  matrix.Float64,
		Solver:     matrix.SolverLU,
		Logger:     discard,
	}
}

// WithNormalized toggles normalization by (N-1)(N-2).
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithWeightKey selects the conductance source.
//
//	""        every edge conducts 1
//	"weight"  Edge.Weight on weighted graphs, 1 otherwise
//	other     Edge.Attrs[key], 1 when the attribute is absent
func WithWeightKey(key string) Option {
	return func(o *Options) { o.WeightKey = key }
}

// WithPrecision selects float64 or float32 arithmetic width.
func WithPrecision(p matrix.Precision) Option {
	return func(o *Options) {
		if !p.Valid() {
			o.err = fmt.Errorf("%w: precision %d: %w", ErrOptionViolation, int(p), matrix.ErrUnknownPrecision)

			return
		}
		o.Precision = p
	}
}

// WithSolver selects the inverse-Laplacian backend (full, lu or cg).
// Names without a registered backend yield ErrMissingDependency.
func WithSolver(kind matrix.SolverKind) Option {
	return func(o *Options) { o.Solver = kind }
}

// WithLogger routes debug events to l. A nil l keeps the discarding default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
