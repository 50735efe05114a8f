package predz

import (
	"context"
	"testing"
)

// constant returns a predicate with a fixed outcome.
func constant(name Name, outcome bool) Predicate[int] {
	return Lift(name, func(int) bool { return outcome })
}

// counting returns a predicate with a fixed outcome that records how many
// times it was evaluated, for short-circuit probes.
func counting(name Name, outcome bool, calls *int) Predicate[int] {
	return Lift(name, func(int) bool {
		*calls++
		return outcome
	})
}

func TestCombinator_AndTruthTable(t *testing.T) {
	ctx := context.Background()
	for _, left := range []bool{true, false} {
		for _, right := range []bool{true, false} {
			got := constant("p", left).And(constant("q", right)).Evaluate(ctx, 0)
			if got != (left && right) {
				t.Errorf("And(%t, %t): expected %t, got %t", left, right, left && right, got)
			}
		}
	}
}

func TestCombinator_OrTruthTable(t *testing.T) {
	ctx := context.Background()
	for _, left := range []bool{true, false} {
		for _, right := range []bool{true, false} {
			got := constant("p", left).Or(constant("q", right)).Evaluate(ctx, 0)
			if got != (left || right) {
				t.Errorf("Or(%t, %t): expected %t, got %t", left, right, left || right, got)
			}
		}
	}
}

func TestCombinator_XorTruthTable(t *testing.T) {
	ctx := context.Background()
	for _, left := range []bool{true, false} {
		for _, right := range []bool{true, false} {
			got := constant("p", left).Xor(constant("q", right)).Evaluate(ctx, 0)
			if got != (left != right) {
				t.Errorf("Xor(%t, %t): expected %t, got %t", left, right, left != right, got)
			}
		}
	}
}

func TestCombinator_Not(t *testing.T) {
	ctx := context.Background()
	if constant("p", true).Not().Evaluate(ctx, 0) {
		t.Error("expected NOT true to be false")
	}
	if !constant("p", false).Not().Evaluate(ctx, 0) {
		t.Error("expected NOT false to be true")
	}
	if !constant("p", true).Not().Not().Evaluate(ctx, 0) {
		t.Error("expected double negation to restore the outcome")
	}
}

func TestCombinator_AndShortCircuit(t *testing.T) {
	ctx := context.Background()

	t.Run("left fails, right untouched", func(t *testing.T) {
		calls := 0
		constant("left", false).And(counting("right", true, &calls)).Evaluate(ctx, 0)
		if calls != 0 {
			t.Errorf("expected right operand untouched, got %d calls", calls)
		}
	})

	t.Run("left passes, right evaluated once", func(t *testing.T) {
		calls := 0
		constant("left", true).And(counting("right", true, &calls)).Evaluate(ctx, 0)
		if calls != 1 {
			t.Errorf("expected 1 call to right operand, got %d", calls)
		}
	})
}

func TestCombinator_OrShortCircuit(t *testing.T) {
	ctx := context.Background()

	t.Run("left passes, right untouched", func(t *testing.T) {
		calls := 0
		constant("left", true).Or(counting("right", true, &calls)).Evaluate(ctx, 0)
		if calls != 0 {
			t.Errorf("expected right operand untouched, got %d calls", calls)
		}
	})

	t.Run("left fails, right evaluated once", func(t *testing.T) {
		calls := 0
		constant("left", false).Or(counting("right", false, &calls)).Evaluate(ctx, 0)
		if calls != 1 {
			t.Errorf("expected 1 call to right operand, got %d", calls)
		}
	})
}

func TestCombinator_XorEvaluatesBoth(t *testing.T) {
	calls := 0
	counting("left", true, &calls).Xor(counting("right", true, &calls)).Evaluate(context.Background(), 0)
	if calls != 2 {
		t.Errorf("expected both operands evaluated, got %d calls", calls)
	}
}

func TestCombinator_ChainEquivalentToAnd(t *testing.T) {
	ctx := context.Background()
	even := Even[int]()
	positive := Positive[int]()
	small := LessThan(10)

	for v := -15; v <= 15; v++ {
		want := even.Evaluate(ctx, v) && positive.Evaluate(ctx, v) && small.Evaluate(ctx, v)
		chained := even.Chain(positive).Chain(small).Evaluate(ctx, v)
		if chained != want {
			t.Errorf("value %d: expected chain %t, got %t", v, want, chained)
		}
	}
}

func TestCombinator_ChainAssociative(t *testing.T) {
	ctx := context.Background()
	even := Even[int]()
	positive := Positive[int]()
	small := LessThan(10)

	for v := -15; v <= 15; v++ {
		leftFirst := even.Chain(positive).Chain(small).Evaluate(ctx, v)
		rightFirst := even.Chain(positive.Chain(small)).Evaluate(ctx, v)
		if leftFirst != rightFirst {
			t.Errorf("value %d: grouping changed the outcome (%t vs %t)", v, leftFirst, rightFirst)
		}
	}
}

func TestCombinator_ComposedNames(t *testing.T) {
	p := constant("even", true)
	q := constant("prime", true)

	tests := []struct {
		name Name
		want Name
	}{
		{p.And(q).Name(), "(even AND prime)"},
		{p.Or(q).Name(), "(even OR prime)"},
		{p.Xor(q).Name(), "(even XOR prime)"},
		{p.Not().Name(), "(NOT even)"},
		{p.Chain(q).Name(), "(even AND prime)"},
	}
	for _, tt := range tests {
		if tt.name != tt.want {
			t.Errorf("expected composed name %q, got %q", tt.want, tt.name)
		}
	}
}

func TestCombinator_OperandsUnchanged(t *testing.T) {
	even := Lift("even", func(n int) bool { return n%2 == 0 })
	positive := Lift("positive", func(n int) bool { return n > 0 })

	_ = even.And(positive)
	_ = even.Not()

	if even.Name() != "even" || positive.Name() != "positive" {
		t.Error("expected composition to leave operand names unchanged")
	}
	if !even.Evaluate(context.Background(), 2) || even.Evaluate(context.Background(), 3) {
		t.Error("expected composition to leave operand behavior unchanged")
	}
}

func TestCombinator_AllOf(t *testing.T) {
	ctx := context.Background()

	if !AllOf[int]().Evaluate(ctx, 0) {
		t.Error("expected empty conjunction to be vacuously true")
	}

	all := AllOf(Positive[int](), Even[int](), LessThan(10))
	if !all.Evaluate(ctx, 4) {
		t.Error("expected 4 to pass all checks")
	}
	if all.Evaluate(ctx, 12) {
		t.Error("expected 12 to fail the upper bound")
	}

	calls := 0
	AllOf(constant("fail", false), counting("later", true, &calls)).Evaluate(ctx, 0)
	if calls != 0 {
		t.Errorf("expected evaluation to stop at first failure, got %d calls", calls)
	}
}

func TestCombinator_AnyOf(t *testing.T) {
	ctx := context.Background()

	if AnyOf[int]().Evaluate(ctx, 0) {
		t.Error("expected empty disjunction to be false")
	}

	some := AnyOf(Even[int](), Prime[int]())
	if !some.Evaluate(ctx, 5) {
		t.Error("expected 5 to pass via primality")
	}
	if some.Evaluate(ctx, 9) {
		t.Error("expected 9 to fail both checks")
	}

	calls := 0
	AnyOf(constant("pass", true), counting("later", true, &calls)).Evaluate(ctx, 0)
	if calls != 0 {
		t.Errorf("expected evaluation to stop at first success, got %d calls", calls)
	}
}

func TestCombinator_NoneOf(t *testing.T) {
	ctx := context.Background()

	if !NoneOf[int]().Evaluate(ctx, 0) {
		t.Error("expected empty rejection to be true")
	}

	none := NoneOf(Even[int](), Negative[int]())
	if !none.Evaluate(ctx, 7) {
		t.Error("expected 7 to fail every check")
	}
	if none.Evaluate(ctx, 4) {
		t.Error("expected 4 to be rejected for evenness")
	}
}

func TestCombinator_OneOf(t *testing.T) {
	ctx := context.Background()

	if OneOf[int]().Evaluate(ctx, 0) {
		t.Error("expected empty exactly-one to be false")
	}

	one := OneOf(Even[int](), Prime[int](), Negative[int]())
	if !one.Evaluate(ctx, 5) {
		t.Error("expected 5 to pass exactly one check (prime)")
	}
	if one.Evaluate(ctx, 2) {
		t.Error("expected 2 to fail: even and prime both pass")
	}
	if one.Evaluate(ctx, 9) {
		t.Error("expected 9 to fail: no check passes")
	}
	if !one.Evaluate(ctx, -3) {
		t.Error("expected -3 to pass exactly one check (negative)")
	}
}
