package predz

import (
	"context"
	"fmt"
	"strings"
)

// And returns a new Predicate that passes only when both the receiver and
// other pass. Evaluation short-circuits: other is never evaluated when the
// receiver fails, exactly like the && operator.
//
// Example:
//
//	sellable := inStock.And(notRecalled)
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return Predicate[T]{
		name: fmt.Sprintf("(%s AND %s)", p.name, other.name),
		fn: func(ctx context.Context, value T) bool {
			return p.Evaluate(ctx, value) && other.Evaluate(ctx, value)
		},
	}
}

// Or returns a new Predicate that passes when either the receiver or other
// passes. Evaluation short-circuits: other is never evaluated when the
// receiver passes, exactly like the || operator.
//
// Example:
//
//	interesting := predz.Prime[int]().Or(predz.PerfectSquare[int]())
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return Predicate[T]{
		name: fmt.Sprintf("(%s OR %s)", p.name, other.name),
		fn: func(ctx context.Context, value T) bool {
			return p.Evaluate(ctx, value) || other.Evaluate(ctx, value)
		},
	}
}

// Chain is And under a fluent name. Successive named checks read as a
// sequence and behave as a conjunction:
//
//	ok := predz.Between(2, 7).Chain(predz.Positive[int]()).Chain(even)
//	// passes only values that satisfy all three checks
func (p Predicate[T]) Chain(other Predicate[T]) Predicate[T] {
	return p.And(other)
}

// Not returns a new Predicate that passes exactly when the receiver fails.
func (p Predicate[T]) Not() Predicate[T] {
	return Predicate[T]{
		name: fmt.Sprintf("(NOT %s)", p.name),
		fn: func(ctx context.Context, value T) bool {
			return !p.Evaluate(ctx, value)
		},
	}
}

// Xor returns a new Predicate that passes when exactly one of the receiver
// and other passes. Unlike And and Or, both operands are always evaluated -
// exclusive-or cannot short-circuit.
func (p Predicate[T]) Xor(other Predicate[T]) Predicate[T] {
	return Predicate[T]{
		name: fmt.Sprintf("(%s XOR %s)", p.name, other.name),
		fn: func(ctx context.Context, value T) bool {
			return p.Evaluate(ctx, value) != other.Evaluate(ctx, value)
		},
	}
}

// AllOf returns a Predicate that passes only when every given predicate
// passes. Evaluation stops at the first failure. With no arguments the
// conjunction is vacuously true.
func AllOf[T any](predicates ...Predicate[T]) Predicate[T] {
	preds := clonePredicates(predicates)
	return Predicate[T]{
		name: joinNames(preds, " AND "),
		fn: func(ctx context.Context, value T) bool {
			for _, p := range preds {
				if !p.Evaluate(ctx, value) {
					return false
				}
			}
			return true
		},
	}
}

// AnyOf returns a Predicate that passes when at least one of the given
// predicates passes. Evaluation stops at the first success. With no
// arguments the disjunction is false.
func AnyOf[T any](predicates ...Predicate[T]) Predicate[T] {
	preds := clonePredicates(predicates)
	return Predicate[T]{
		name: joinNames(preds, " OR "),
		fn: func(ctx context.Context, value T) bool {
			for _, p := range preds {
				if p.Evaluate(ctx, value) {
					return true
				}
			}
			return false
		},
	}
}

// NoneOf returns a Predicate that passes only when every given predicate
// fails. Evaluation stops at the first success.
func NoneOf[T any](predicates ...Predicate[T]) Predicate[T] {
	some := AnyOf(predicates...)
	return Predicate[T]{
		name: fmt.Sprintf("(NOT %s)", some.name),
		fn: func(ctx context.Context, value T) bool {
			return !some.Evaluate(ctx, value)
		},
	}
}

// OneOf returns a Predicate that passes when exactly one of the given
// predicates passes. Evaluation stops as soon as a second success is seen.
func OneOf[T any](predicates ...Predicate[T]) Predicate[T] {
	ps := clonePredicates(predicates)
	return Predicate[T]{
		name: joinNames(ps, " XOR "),
		fn: func(ctx context.Context, value T) bool {
			matched := false
			for _, p := range ps {
				if !p.Evaluate(ctx, value) {
					continue
				}
				if matched {
					return false
				}
				matched = true
			}
			return matched
		},
	}
}

// clonePredicates snapshots the variadic slice so later mutation of the
// caller's slice cannot change the composed predicate.
func clonePredicates[T any](predicates []Predicate[T]) []Predicate[T] {
	out := make([]Predicate[T], len(predicates))
	copy(out, predicates)
	return out
}

func joinNames[T any](predicates []Predicate[T], sep string) Name {
	names := make([]string, len(predicates))
	for i, p := range predicates {
		names[i] = string(p.name)
	}
	return Name("(" + strings.Join(names, sep) + ")")
}
