package predz

import (
	"context"
	"fmt"
	"time"
)

// Violation reports a value rejected by a named predicate. It records which
// predicate rejected the value, the value itself, and when the rejection
// happened, so callers can surface precise validation failures without
// re-evaluating anything.
type Violation[T any] struct {
	InputData T
	Timestamp time.Time
	Predicate Name
}

// Error implements the error interface.
func (v *Violation[T]) Error() string {
	return fmt.Sprintf("predicate %q rejected value %v", v.Predicate, v.InputData)
}

// Require evaluates p against value and converts a rejection into an error.
// It returns nil when the predicate passes and a *Violation[T] otherwise.
//
// Example:
//
//	if err := predz.Require(ctx, validPort, port); err != nil {
//	    var violation *predz.Violation[int]
//	    if errors.As(err, &violation) {
//	        log.Printf("rejected by %s: %v", violation.Predicate, violation.InputData)
//	    }
//	    return err
//	}
func Require[T any](ctx context.Context, p Predicate[T], value T) error {
	if p.Evaluate(ctx, value) {
		return nil
	}
	return &Violation[T]{
		InputData: value,
		Timestamp: time.Now(),
		Predicate: p.Name(),
	}
}
