package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrNoCandidates is returned when there is nothing to probe.
var ErrNoCandidates = errors.New("no candidate paths")

// ExhaustedError reports that every candidate failed to load.
type ExhaustedError struct {
	Attempted []string
	Last      error
	causes    error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no candidate loaded (tried %s): %v", strings.Join(e.Attempted, ", "), e.Last)
}

// Unwrap returns the error of the last attempted candidate.
func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// Causes returns the failure of every attempted candidate, in order.
func (e *ExhaustedError) Causes() []error {
	return multierr.Errors(e.causes)
}

// ProbeFunc loads one candidate path.
type ProbeFunc[T any] func(ctx context.Context, path string) (T, error)

// Outcome is the result of a resolution. Err is nil on success.
type Outcome[T any] struct {
	Path      string
	Asset     T
	Attempted []string
	Err       error
}

func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

// Resolve probes paths strictly in order and stops at the first one that loads.
// Nothing is remembered between calls.
func Resolve[T any](ctx context.Context, paths []string, probe ProbeFunc[T]) Outcome[T] {
	var out Outcome[T]
	if len(paths) == 0 {
		out.Err = ErrNoCandidates
		return out
	}

	var causes, last error
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			out.Err = fmt.Errorf("resolve interrupted after %d attempts: %w", len(out.Attempted), err)
			return out
		}
		out.Attempted = append(out.Attempted, p)

		asset, err := probe(ctx, p)
		if err == nil {
			out.Path = p
			out.Asset = asset
			return out
		}
		last = err
		causes = multierr.Append(causes, fmt.Errorf("%s: %w", p, err))
	}

	out.Err = &ExhaustedError{
		Attempted: append([]string(nil), out.Attempted...),
		Last:      last,
		causes:    causes,
	}
	return out
}
