package predz

import (
	"cmp"
	"fmt"
	"math"
)

// Integer constrains the integer-only catalogue predicates (parity,
// primality, divisibility) to types where those properties are defined.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number constrains the sign and magnitude predicates to numeric types.
type Number interface {
	Integer | ~float32 | ~float64
}

// Positive passes values strictly greater than zero.
func Positive[T Number]() Predicate[T] {
	return Lift[T]("positive", func(value T) bool { return value > 0 })
}

// Negative passes values strictly less than zero.
func Negative[T Number]() Predicate[T] {
	return Lift[T]("negative", func(value T) bool { return value < 0 })
}

// NonNegative passes zero and everything above it.
func NonNegative[T Number]() Predicate[T] {
	return Lift[T]("non-negative", func(value T) bool { return value >= 0 })
}

// NonPositive passes zero and everything below it.
func NonPositive[T Number]() Predicate[T] {
	return Lift[T]("non-positive", func(value T) bool { return value <= 0 })
}

// Zero passes only the zero value.
func Zero[T Number]() Predicate[T] {
	return Lift[T]("zero", func(value T) bool { return value == 0 })
}

// Even passes integers divisible by two.
func Even[T Integer]() Predicate[T] {
	return Lift[T]("even", func(value T) bool { return value%2 == 0 })
}

// Odd passes integers not divisible by two.
func Odd[T Integer]() Predicate[T] {
	return Lift[T]("odd", func(value T) bool { return value%2 != 0 })
}

// Prime passes prime integers. Values below two, including all negative
// values, are not prime. The check is trial division by odd candidates up
// to the square root, which is plenty for a validation predicate.
func Prime[T Integer]() Predicate[T] {
	return Lift[T]("prime", func(value T) bool {
		if value < 2 {
			return false
		}
		n := uint64(value)
		if n%2 == 0 {
			return n == 2
		}
		for d := uint64(3); d*d <= n; d += 2 {
			if n%d == 0 {
				return false
			}
		}
		return true
	})
}

// PerfectSquare passes integers that are the square of an integer.
// Zero and one count; negative values never pass.
func PerfectSquare[T Integer]() Predicate[T] {
	return Lift[T]("perfect-square", func(value T) bool {
		if value < 0 {
			return false
		}
		n := uint64(value)
		if n == 0 {
			return true
		}
		// math.Sqrt can land one off at integer boundaries for large n.
		r := uint64(math.Sqrt(float64(n)))
		for c := r - 1; c <= r+1; c++ {
			if c*c == n {
				return true
			}
		}
		return false
	})
}

// MultipleOf passes integers evenly divisible by factor.
// With factor zero, only zero itself passes.
func MultipleOf[T Integer](factor T) Predicate[T] {
	return Lift[T](fmt.Sprintf("multiple-of(%v)", factor), func(value T) bool {
		if factor == 0 {
			return value == 0
		}
		return value%factor == 0
	})
}

// Between passes values inside the open interval (lower, upper): the bounds
// themselves do not pass. Use BetweenInclusive for closed bounds.
func Between[T cmp.Ordered](lower, upper T) Predicate[T] {
	return Lift[T](fmt.Sprintf("between(%v, %v)", lower, upper), func(value T) bool {
		return lower < value && value < upper
	})
}

// BetweenInclusive passes values inside the closed interval [lower, upper].
func BetweenInclusive[T cmp.Ordered](lower, upper T) Predicate[T] {
	return Lift[T](fmt.Sprintf("between-inclusive(%v, %v)", lower, upper), func(value T) bool {
		return lower <= value && value <= upper
	})
}

// LessThan passes values strictly below limit.
func LessThan[T cmp.Ordered](limit T) Predicate[T] {
	return Lift[T](fmt.Sprintf("less-than(%v)", limit), func(value T) bool {
		return value < limit
	})
}

// GreaterThan passes values strictly above limit.
func GreaterThan[T cmp.Ordered](limit T) Predicate[T] {
	return Lift[T](fmt.Sprintf("greater-than(%v)", limit), func(value T) bool {
		return value > limit
	})
}

// EqualTo passes values equal to want.
func EqualTo[T comparable](want T) Predicate[T] {
	return Lift[T](fmt.Sprintf("equal-to(%v)", want), func(value T) bool {
		return value == want
	})
}

// In passes values that appear in the given set. The set is copied at
// construction, so later changes to the caller's slice have no effect.
func In[T comparable](values ...T) Predicate[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Lift[T](fmt.Sprintf("in%v", values), func(value T) bool {
		_, ok := set[value]
		return ok
	})
}
