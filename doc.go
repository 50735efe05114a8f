// Package predz provides a lightweight, type-safe library for building composable boolean predicates in Go.
//
// # Overview
//
// predz turns small boolean checks into named, reusable values that combine
// with logical operators into richer rules. It addresses the usual fate of
// validation logic in Go applications: ad-hoc if-chains duplicated across
// call sites, impossible to name, reuse, or observe.
//
// # Core Concepts
//
// The library is built around a single value type:
//
//	type Predicate[T any] struct { ... }
//
// Key components:
//   - Predicate[T]: a named, immutable boolean test over one value
//   - Combinators: And, Or, Not, Xor and Chain build new predicates from old ones
//   - Catalogue: ready-made numeric, string and time predicates
//   - Gate[T]: a stateful, observable evaluation point for production rules
//
// Predicates are immutable values; combining them always returns a new
// predicate and never touches the operands. Evaluation is a pure boolean
// fold over the composition tree with standard short-circuit semantics:
// And never evaluates its right operand when the left fails, Or never
// evaluates its right operand when the left passes. There is no memoization -
// every call re-runs the tree.
//
// # Building Predicates
//
// Wrap your own checks with New (context-aware) or Lift (plain function):
//
//	even := predz.Lift("even", func(n int) bool { return n%2 == 0 })
//	beta := predz.New("beta-enabled", func(ctx context.Context, u User) bool {
//	    return flags.Enabled(ctx, "beta", u.ID)
//	})
//
// Or pick from the catalogue:
//
//	predz.Prime[int]()
//	predz.Between(2, 7)
//	predz.Digits()
//	predz.Recent(time.Hour, nil)
//
// # Combining Predicates
//
// Binary combinators read like the boolean operators they implement:
//
//	either := predz.Even[int]().Or(predz.Prime[int]())
//	both   := predz.Between(2, 7).And(predz.Positive[int]())
//
// Chain is And under a fluent name, so successive checks read as a sequence:
//
//	ok := predz.Between(2, 7).Chain(predz.Positive[int]())
//
// Variadic forms cover n-ary composition: AllOf, AnyOf, NoneOf, OneOf.
//
// # Evaluating
//
// Evaluate directly, demand a match with Require, or sweep a slice:
//
//	either.Evaluate(ctx, 5)                  // true
//	err := predz.Require(ctx, both, 9)       // *Violation[int]
//	kept := predz.Filter(ctx, either, nums)  // matching values, in order
//
// # Observing Rules in Production
//
// Wrap the predicate at a real decision point in a Gate to get counters,
// spans, decision events, and runtime reconfiguration:
//
//	var sellableGate = predz.NewGate("sellable", inStock.And(notRecalled))
//
//	if sellableGate.Evaluate(ctx, item) {
//	    publish(item)
//	}
//	sellableGate.SetPredicate(inStock) // relax the rule at runtime
//
// # Concurrency
//
// Predicates hold no mutable state after construction and are safe to share
// across goroutines without locking. Gates are thread-safe and intended to
// be shared; create them once, typically as package-level variables.
package predz
