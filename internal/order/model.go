package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusReady     Status = "ready"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReady, StatusCancelled:
		return true
	}
	return false
}

// Item is a line of an order. Name and Price are snapshotted at order
// time so historical totals stay stable when the catalog changes.
type Item struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price int    `json:"price"`
}

type Order struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	PickupDate    string    `json:"pickup_date"`
	PickupTime    string    `json:"pickup_time"`
	Items         []Item    `json:"items"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// TotalPrice sums the snapshotted line prices.
func (o Order) TotalPrice() int {
	total := 0
	for _, it := range o.Items {
		total += it.Price * it.Qty
	}
	return total
}
