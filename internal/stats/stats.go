// Package stats derives staff dashboard figures from an order subset.
// Callers scope the input themselves (usually one pickup date); nothing
// here filters by date.
package stats

import (
	"sort"

	"mariabakery-be/internal/order"
)

// ProductQty is one row of the per-product ranking.
type ProductQty struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Summary struct {
	TotalCount     int `json:"total_count"`
	PendingCount   int `json:"pending_count"`
	ReadyCount     int `json:"ready_count"`
	CancelledCount int `json:"cancelled_count"`

	// PerProduct is sorted by quantity descending; ties keep input
	// encounter order.
	PerProduct []ProductQty `json:"per_product"`

	// EstimatedRevenue trusts each line's snapshotted price. Lines
	// with a missing (zero) price contribute nothing and are counted
	// in MissingPriceLines as a data-quality signal.
	EstimatedRevenue  int `json:"estimated_revenue"`
	MissingPriceLines int `json:"missing_price_lines,omitempty"`
}

// Summarize computes counts by status, the per-product quantity
// ranking, and the revenue estimate for the given orders.
func Summarize(orders []order.Order) Summary {
	s := Summary{TotalCount: len(orders)}

	index := make(map[string]int)
	for _, o := range orders {
		switch o.Status {
		case order.StatusPending:
			s.PendingCount++
		case order.StatusReady:
			s.ReadyCount++
		case order.StatusCancelled:
			s.CancelledCount++
		}

		for _, item := range o.Items {
			pos, seen := index[item.Name]
			if !seen {
				pos = len(s.PerProduct)
				index[item.Name] = pos
				s.PerProduct = append(s.PerProduct, ProductQty{Name: item.Name})
			}
			s.PerProduct[pos].Qty += item.Qty

			if item.Price == 0 {
				s.MissingPriceLines++
				continue
			}
			s.EstimatedRevenue += item.Price * item.Qty
		}
	}

	sort.SliceStable(s.PerProduct, func(i, j int) bool {
		return s.PerProduct[i].Qty > s.PerProduct[j].Qty
	})

	return s
}

// Top returns the n best-selling products, fewer when the ranking is
// shorter.
func (s Summary) Top(n int) []ProductQty {
	if n > len(s.PerProduct) {
		n = len(s.PerProduct)
	}
	out := make([]ProductQty, n)
	copy(out, s.PerProduct[:n])
	return out
}
