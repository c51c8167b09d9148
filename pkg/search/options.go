package search

import (
	"io"
	"log/slog"

	"github.com/aretw0/furrow/pkg/domain"
)

// DefaultMaxExpansions bounds a search when no limit is given.
const DefaultMaxExpansions = 10_000

type options struct {
	maxExpansions int
	maxDepth      int
	hooks         domain.SearchHooks
	logger        *slog.Logger
}

// Option configures a search run.
type Option func(*options)

// WithMaxExpansions stops the search after n node expansions. n <= 0 keeps the default.
func WithMaxExpansions(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxExpansions = n
		}
	}
}

// WithMaxDepth prevents expanding nodes deeper than d actions. 0 means unlimited.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d >= 0 {
			o.maxDepth = d
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(h domain.SearchHooks) Option {
	return func(o *options) {
		o.hooks = h
	}
}

// WithLogger sets a structured logger for the run.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		maxExpansions: DefaultMaxExpansions,
		logger:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
