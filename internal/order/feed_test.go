package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore feeds canned snapshots through Subscribe.
type stubStore struct {
	snapshots chan []Order
}

func (s *stubStore) Subscribe(ctx context.Context) (<-chan []Order, error) {
	return s.snapshots, nil
}

func (s *stubStore) AddOrder(ctx context.Context, o *Order) error                 { return nil }
func (s *stubStore) UpdateStatus(ctx context.Context, id string, st Status) error { return nil }
func (s *stubStore) ListAll(ctx context.Context) ([]Order, error)                 { return nil, nil }

func TestFeedTracksSnapshots(t *testing.T) {
	store := &stubStore{snapshots: make(chan []Order)}
	feed := NewFeed()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- feed.Run(ctx, store) }()

	assert.Empty(t, feed.Orders())

	store.snapshots <- []Order{{ID: "o-1", Status: StatusPending}}
	require.Eventually(t, func() bool {
		return len(feed.Orders()) == 1
	}, time.Second, 10*time.Millisecond)

	// A later snapshot fully replaces the previous one.
	store.snapshots <- []Order{
		{ID: "o-1", Status: StatusReady},
		{ID: "o-2", Status: StatusPending},
	}
	require.Eventually(t, func() bool {
		orders := feed.Orders()
		return len(orders) == 2 && orders[0].Status == StatusReady
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestFeedStopsOnClosedStream(t *testing.T) {
	store := &stubStore{snapshots: make(chan []Order)}
	feed := NewFeed()

	done := make(chan error, 1)
	go func() { done <- feed.Run(context.Background(), store) }()

	close(store.snapshots)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("feed did not stop when the stream closed")
	}
}

func TestFeedOrdersReturnsCopy(t *testing.T) {
	feed := NewFeed()
	feed.Set([]Order{{ID: "o-1", Status: StatusPending}})

	orders := feed.Orders()
	orders[0].Status = StatusCancelled

	assert.Equal(t, StatusPending, feed.Orders()[0].Status)
}
