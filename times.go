package predz

import (
	"fmt"
	"time"

	"github.com/zoobzio/clockz"
)

// Before passes instants strictly before t.
func Before(t time.Time) Predicate[time.Time] {
	return Lift(fmt.Sprintf("before(%s)", t.Format(time.RFC3339)), func(value time.Time) bool {
		return value.Before(t)
	})
}

// After passes instants strictly after t.
func After(t time.Time) Predicate[time.Time] {
	return Lift(fmt.Sprintf("after(%s)", t.Format(time.RFC3339)), func(value time.Time) bool {
		return value.After(t)
	})
}

// Past passes instants before the clock's current time. Pass nil to use the
// real clock; inject a fake clock in tests for deterministic results.
func Past(clock clockz.Clock) Predicate[time.Time] {
	c := pickClock(clock)
	return Lift("past", func(value time.Time) bool {
		return value.Before(c.Now())
	})
}

// Future passes instants after the clock's current time. Pass nil to use
// the real clock.
func Future(clock clockz.Clock) Predicate[time.Time] {
	c := pickClock(clock)
	return Lift("future", func(value time.Time) bool {
		return value.After(c.Now())
	})
}

// Recent passes instants within the trailing window ending at the clock's
// current time. The window bounds are inclusive; future instants never pass.
// Pass nil to use the real clock.
func Recent(window time.Duration, clock clockz.Clock) Predicate[time.Time] {
	c := pickClock(clock)
	return Lift(fmt.Sprintf("recent(%s)", window), func(value time.Time) bool {
		age := c.Since(value)
		return age >= 0 && age <= window
	})
}

// pickClock returns the clock to use.
func pickClock(clock clockz.Clock) clockz.Clock {
	if clock == nil {
		return clockz.RealClock
	}
	return clock
}
