package predz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Gate observability.
const (
	GateEvaluatedTotal = metricz.Key("gate.evaluated.total")
	GateMatchedTotal   = metricz.Key("gate.matched.total")
	GateRejectedTotal  = metricz.Key("gate.rejected.total")
)

// Span names for Gate.
const (
	GateEvaluateSpan = tracez.Key("gate.evaluate")
)

// Span tags for Gate.
const (
	GateTagGate      = tracez.Tag("gate.name")
	GateTagPredicate = tracez.Tag("gate.predicate")
	GateTagMatched   = tracez.Tag("gate.matched")

	// Hook event keys.
	GateEventMatched  = hookz.Key("gate.matched")
	GateEventRejected = hookz.Key("gate.rejected")
)

// GateEvent represents a single gate decision.
// This is emitted via hookz every time the gate evaluates its predicate,
// allowing external systems to track accept/reject decisions.
type GateEvent struct {
	Name      Name      // Gate name
	Predicate Name      // Name of the predicate that decided
	Matched   bool      // Whether the value passed
	Timestamp time.Time // When the decision was made
}

// Gate wraps a Predicate as a named, observable evaluation point for
// production call sites.
//
// A bare Predicate is a pure value: cheap, immutable, and silent. A Gate is
// the opposite by design - it is a stateful pointer that counts every
// decision, traces every evaluation, and emits events, so the one place in
// your system where a business rule accepts or rejects real traffic can be
// watched and reconfigured without redeploying.
//
// Use a Gate when:
//   - Operators need accept/reject rates for a rule (metrics)
//   - A rule must be swappable at runtime (feature rollouts, kill switches)
//   - Rejections should trigger external systems (alerts, audit trails)
//
// Keep using bare Predicates everywhere else; composing them costs nothing.
//
// Like the stateful connectors it is modeled after, a Gate should be created
// once and shared - typically as a package-level variable - so its counters
// and hooks observe all traffic.
//
// # Observability
//
// Metrics:
//   - gate.evaluated.total: Counter of evaluations
//   - gate.matched.total: Counter of values that passed
//   - gate.rejected.total: Counter of values that were rejected
//
// Traces:
//   - gate.evaluate: Span for each evaluation, tagged with the gate name,
//     predicate name, and outcome
//
// Events (via hooks):
//   - gate.matched: Fired when the predicate passes
//   - gate.rejected: Fired when the predicate rejects
//
// Example:
//
//	var sellableGate = predz.NewGate("sellable", inStock.And(notRecalled))
//
//	sellableGate.OnRejected(func(ctx context.Context, event predz.GateEvent) error {
//	    audit.Record(ctx, "listing rejected", event.Predicate)
//	    return nil
//	})
//
//	if sellableGate.Evaluate(ctx, item) {
//	    publish(item)
//	}
type Gate[T any] struct {
	predicate Predicate[T]
	name      Name
	clock     clockz.Clock
	mu        sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[GateEvent]
}

// NewGate creates a new Gate around the given predicate.
func NewGate[T any](name Name, predicate Predicate[T]) *Gate[T] {
	registry := metricz.New()
	registry.Counter(GateEvaluatedTotal)
	registry.Counter(GateMatchedTotal)
	registry.Counter(GateRejectedTotal)

	return &Gate[T]{
		name:      name,
		predicate: predicate,
		metrics:   registry,
		tracer:    tracez.New(),
		hooks:     hookz.New[GateEvent](),
	}
}

// Evaluate applies the gate's predicate to value, recording the decision.
// A panic inside a user-supplied condition is recovered and counted as a
// rejection; the gate itself never panics on evaluation.
func (g *Gate[T]) Evaluate(ctx context.Context, value T) bool {
	g.mu.RLock()
	predicate := g.predicate
	g.mu.RUnlock()

	ctx, span := g.tracer.StartSpan(ctx, GateEvaluateSpan)
	defer span.Finish()
	span.SetTag(GateTagGate, string(g.Name()))
	span.SetTag(GateTagPredicate, string(predicate.Name()))

	g.metrics.Counter(GateEvaluatedTotal).Inc()

	matched := safeEvaluate(ctx, predicate, value)
	span.SetTag(GateTagMatched, fmt.Sprintf("%t", matched))

	event := GateEvent{
		Name:      g.Name(),
		Predicate: predicate.Name(),
		Matched:   matched,
		Timestamp: g.getClock().Now(),
	}
	if matched {
		g.metrics.Counter(GateMatchedTotal).Inc()
		_ = g.hooks.Emit(ctx, GateEventMatched, event) //nolint:errcheck
	} else {
		g.metrics.Counter(GateRejectedTotal).Inc()
		_ = g.hooks.Emit(ctx, GateEventRejected, event) //nolint:errcheck
	}
	return matched
}

// safeEvaluate runs the predicate, treating a panic as a rejection.
func safeEvaluate[T any](ctx context.Context, p Predicate[T], value T) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			matched = false
		}
	}()
	return p.Evaluate(ctx, value)
}

// Condition returns the gate as a raw Condition, so an observed gate can
// stand in anywhere a bare check function is accepted.
func (g *Gate[T]) Condition() Condition[T] {
	return g.Evaluate
}

// SetPredicate swaps the predicate at runtime.
// This allows rules to change behavior without rebuilding the gate.
func (g *Gate[T]) SetPredicate(predicate Predicate[T]) *Gate[T] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.predicate = predicate
	return g
}

// Predicate returns the current predicate.
func (g *Gate[T]) Predicate() Predicate[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.predicate
}

// Name returns the name of this gate.
func (g *Gate[T]) Name() Name {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

// Metrics returns the metrics registry for this gate.
func (g *Gate[T]) Metrics() *metricz.Registry {
	return g.metrics
}

// Tracer returns the tracer for this gate.
func (g *Gate[T]) Tracer() *tracez.Tracer {
	return g.tracer
}

// WithClock sets a custom clock for testing.
func (g *Gate[T]) WithClock(clock clockz.Clock) *Gate[T] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clock = clock
	return g
}

// getClock returns the clock to use.
func (g *Gate[T]) getClock() clockz.Clock {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.clock == nil {
		return clockz.RealClock
	}
	return g.clock
}

// Close gracefully shuts down observability components.
func (g *Gate[T]) Close() error {
	if g.tracer != nil {
		g.tracer.Close()
	}
	g.hooks.Close()
	return nil
}

// OnMatched registers a handler for values the predicate passes.
// The handler is called asynchronously after the decision is recorded.
func (g *Gate[T]) OnMatched(handler func(context.Context, GateEvent) error) error {
	_, err := g.hooks.Hook(GateEventMatched, handler)
	return err
}

// OnRejected registers a handler for values the predicate rejects.
// The handler is called asynchronously after the decision is recorded.
func (g *Gate[T]) OnRejected(handler func(context.Context, GateEvent) error) error {
	_, err := g.hooks.Hook(GateEventRejected, handler)
	return err
}
