package lowering

import "github.com/quag/candy/internal/diag"

// Result is the per-rule outcome the dispatch and merge combinators
// share: either a value, or a non-empty list of diagnostics. Errors are
// collected, never thrown; nothing in this package panics on a malformed
// program.
type Result[T any] struct {
	Value  T
	Errors []*diag.Diagnostic
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fail wraps one or more diagnostics as a failed result.
func Fail[T any](errs ...*diag.Diagnostic) Result[T] { return Result[T]{Errors: errs} }

// IsError reports whether this result carries at least one diagnostic.
func (r Result[T]) IsError() bool { return len(r.Errors) > 0 }

// MergeAll folds independent per-element results into "all values" or
// "all errors concatenated". It never stops at the first error: every
// element is visited so sibling diagnostics all surface together.
func MergeAll[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	var errs []*diag.Diagnostic
	for _, r := range results {
		if r.IsError() {
			errs = append(errs, r.Errors...)
			continue
		}
		values = append(values, r.Value)
	}
	if len(errs) > 0 {
		return Result[[]T]{Errors: errs}
	}
	return Result[[]T]{Value: values}
}

// MergeFlatten is MergeAll's sibling for results that are themselves
// lists: successes are concatenated rather than collected as one entry
// per result.
func MergeFlatten[T any](results []Result[[]T]) Result[[]T] {
	var values []T
	var errs []*diag.Diagnostic
	for _, r := range results {
		if r.IsError() {
			errs = append(errs, r.Errors...)
			continue
		}
		values = append(values, r.Value...)
	}
	if len(errs) > 0 {
		return Result[[]T]{Errors: errs}
	}
	return Result[[]T]{Value: values}
}
