package order

import "context"

// Store is the canonical order set. The backing implementation owns
// persistence; the rest of the app only appends orders, updates their
// status, and observes snapshots.
type Store interface {
	// Subscribe delivers the full current snapshot of all orders on
	// every backing-store change, starting with the state at call time.
	// Cancelling ctx releases the stream and closes the channel.
	Subscribe(ctx context.Context) (<-chan []Order, error)

	// AddOrder persists a new order and fills in its store-assigned ID.
	AddOrder(ctx context.Context, o *Order) error

	// UpdateStatus transitions an existing order.
	UpdateStatus(ctx context.Context, orderID string, status Status) error

	// ListAll reads the current snapshot once.
	ListAll(ctx context.Context) ([]Order, error)
}
