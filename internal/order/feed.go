package order

import (
	"context"
	"sync"

	"mariabakery-be/internal/logger"

	"go.uber.org/zap"
)

// Feed holds the latest order snapshot delivered by the store
// subscription. Derived views (sold map, slot occupancy, statistics)
// are always recomputed from the snapshot returned by Orders, so
// staleness is bounded only by delivery latency.
type Feed struct {
	mu     sync.RWMutex
	orders []Order
}

func NewFeed() *Feed {
	return &Feed{}
}

// Run consumes the store subscription until ctx is cancelled.
func (f *Feed) Run(ctx context.Context, store Store) error {
	stream, err := store.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.FromCtx(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snapshot, ok := <-stream:
			if !ok {
				return nil
			}
			f.Set(snapshot)
			log.Debug("order snapshot received", zap.Int("orders", len(snapshot)))
		}
	}
}

// Set replaces the current snapshot.
func (f *Feed) Set(orders []Order) {
	f.mu.Lock()
	f.orders = orders
	f.mu.Unlock()
}

// Orders returns a copy of the latest snapshot.
func (f *Feed) Orders() []Order {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Order, len(f.orders))
	copy(out, f.orders)
	return out
}
