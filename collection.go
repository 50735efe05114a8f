package predz

import "context"

// Filter returns the values that pass the predicate, in order.
//
// Example:
//
//	interesting := predz.Prime[int]().Or(predz.PerfectSquare[int]())
//	kept := predz.Filter(ctx, interesting, numbers)
func Filter[T any](ctx context.Context, p Predicate[T], values []T) []T {
	var result []T
	for _, value := range values {
		if p.Evaluate(ctx, value) {
			result = append(result, value)
		}
	}
	return result
}

// Partition splits values into those that pass the predicate and those that
// do not, preserving order within each half.
func Partition[T any](ctx context.Context, p Predicate[T], values []T) (matched, rejected []T) {
	for _, value := range values {
		if p.Evaluate(ctx, value) {
			matched = append(matched, value)
		} else {
			rejected = append(rejected, value)
		}
	}
	return matched, rejected
}

// First returns the first value that passes the predicate, and whether any
// value did. Remaining values are not evaluated after a match.
func First[T any](ctx context.Context, p Predicate[T], values []T) (T, bool) {
	for _, value := range values {
		if p.Evaluate(ctx, value) {
			return value, true
		}
	}
	var zero T
	return zero, false
}

// Count returns how many values pass the predicate.
func Count[T any](ctx context.Context, p Predicate[T], values []T) int {
	n := 0
	for _, value := range values {
		if p.Evaluate(ctx, value) {
			n++
		}
	}
	return n
}

// Every reports whether all values pass the predicate. Evaluation stops at
// the first rejection. An empty slice vacuously passes.
func Every[T any](ctx context.Context, p Predicate[T], values []T) bool {
	for _, value := range values {
		if !p.Evaluate(ctx, value) {
			return false
		}
	}
	return true
}

// Some reports whether at least one value passes the predicate. Evaluation
// stops at the first match.
func Some[T any](ctx context.Context, p Predicate[T], values []T) bool {
	for _, value := range values {
		if p.Evaluate(ctx, value) {
			return true
		}
	}
	return false
}
