// Where: internal/usecase/scaffold/background.go
// What: Tracker for auxiliary steps launched without blocking the caller.
// Why: Detached tools must still be joined and reported before the run ends.
package scaffold

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Background runs auxiliary steps concurrently and collects their outcomes.
// A failing step never cancels its siblings.
type Background struct {
	ctx   context.Context
	group errgroup.Group

	mu       sync.Mutex
	outcomes []StepOutcome
}

// NewBackground returns a tracker whose steps observe ctx unchanged.
func NewBackground(ctx context.Context) *Background {
	return &Background{ctx: ctx}
}

// Go launches fn. Outcomes keep launch order.
func (b *Background) Go(fn func(context.Context) StepOutcome) {
	b.mu.Lock()
	idx := len(b.outcomes)
	b.outcomes = append(b.outcomes, StepOutcome{})
	b.mu.Unlock()

	b.group.Go(func() error {
		outcome := fn(b.ctx)
		b.mu.Lock()
		b.outcomes[idx] = outcome
		b.mu.Unlock()
		return nil
	})
}

// Wait blocks until every launched step has finished. Steps report failures
// through their outcome, so the group itself never errors.
func (b *Background) Wait() []StepOutcome {
	_ = b.group.Wait()
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]StepOutcome(nil), b.outcomes...)
}
