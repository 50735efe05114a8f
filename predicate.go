package predz

import "context"

// Name is a type alias for predicate and gate names.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const (
//	    EligibleAgeName    Name = "eligible-age"
//	    VerifiedEmailName  Name = "verified-email"
//	)
//
//	eligible := predz.Lift(EligibleAgeName, func(age int) bool { return age >= 18 })
type Name = string

// Condition is the raw test shape: a single-argument boolean check with
// context support. Any function matching this signature can become a
// Predicate through New, or be used directly where a bare check suffices.
type Condition[T any] func(context.Context, T) bool

// Predicate is a named, reusable boolean test over a single value of type T.
//
// Predicates are immutable values - they wrap a test function with a name at
// construction and never change afterward. Combining predicates (And, Or,
// Not, Chain) always produces a new Predicate and never modifies the
// operands. This makes predicates safe to share across goroutines and store
// as package-level values without synchronization.
//
// Evaluation is pure: it returns a boolean, never mutates its input, and
// re-runs the full composition tree on every call. There is no memoization
// or caching - a predicate over the same value is as cheap as the functions
// it wraps.
//
// The name appears in Violation errors and Gate events to identify exactly
// which check rejected a value, so prefer descriptive names:
//
//	inStock := predz.Lift("in-stock", func(i Item) bool { return i.Quantity > 0 })
//	sellable := inStock.And(notRecalled)
//	// sellable.Name() == "(in-stock AND not-recalled)"
type Predicate[T any] struct {
	fn   Condition[T]
	name Name
}

// New wraps a context-aware boolean test as a named Predicate.
// Use New when the test needs the context, for example to honor
// request-scoped configuration or deadlines in an expensive check.
//
// Example:
//
//	flagged := predz.New("beta-enabled", func(ctx context.Context, u User) bool {
//	    return flags.Enabled(ctx, "beta", u.ID)
//	})
func New[T any](name Name, fn Condition[T]) Predicate[T] {
	return Predicate[T]{name: name, fn: fn}
}

// Lift adapts a plain func(T) bool into a named Predicate, for tests that
// have no use for a context. Most catalogue predicates are built this way.
//
// Example:
//
//	even := predz.Lift("even", func(n int) bool { return n%2 == 0 })
func Lift[T any](name Name, fn func(T) bool) Predicate[T] {
	return Predicate[T]{name: name, fn: func(_ context.Context, value T) bool {
		return fn(value)
	}}
}

// Evaluate applies the wrapped test to value and reports whether it passed.
// The zero-value Predicate matches nothing.
func (p Predicate[T]) Evaluate(ctx context.Context, value T) bool {
	if p.fn == nil {
		return false
	}
	return p.fn(ctx, value)
}

// Condition returns the predicate as a raw Condition, for call sites that
// accept a bare check function.
func (p Predicate[T]) Condition() Condition[T] {
	return p.Evaluate
}

// Name returns the name of the predicate for debugging and error reporting.
// Combined predicates carry composed names like "(even AND prime)".
func (p Predicate[T]) Name() Name {
	return p.name
}
