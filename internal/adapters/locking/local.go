package locking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// Compile-time interface check.
var _ ports.StageLocker = (*Local)(nil)

// Local is an in-process StageLocker. Each stage is a one-slot channel so
// that waiting can be abandoned when the context or wait timeout expires.
type Local struct {
	waitTimeout time.Duration
	slots       map[deal.Stage]chan struct{}
}

// NewLocal creates a Local locker. A non-positive waitTimeout means callers
// wait until their context is done.
func NewLocal(waitTimeout time.Duration) *Local {
	slots := make(map[deal.Stage]chan struct{}, len(deal.Stages()))
	for _, st := range deal.Stages() {
		slots[st] = make(chan struct{}, 1)
	}
	return &Local{waitTimeout: waitTimeout, slots: slots}
}

// Lock acquires the given stages in board order.
func (l *Local) Lock(ctx context.Context, stages ...deal.Stage) (func(), error) {
	if l.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.waitTimeout)
		defer cancel()
	}

	var held []chan struct{}
	unlock := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-held[i]
		}
	}

	for _, st := range deal.BoardOrder(stages...) {
		slot := l.slots[st]
		select {
		case slot <- struct{}{}:
			held = append(held, slot)
		case <-ctx.Done():
			unlock()
			return nil, fmt.Errorf("%w: waiting for stage %s: %w", domain.ErrConflict, st, ctx.Err())
		}
	}

	var once sync.Once
	return func() { once.Do(unlock) }, nil
}
