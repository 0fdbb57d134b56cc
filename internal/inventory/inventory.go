// Package inventory derives per-day sold quantities from the live
// order set. Everything here is a pure function of its inputs; callers
// recompute on every snapshot or date change instead of diffing.
package inventory

import (
	"mariabakery-be/internal/catalog"
	"mariabakery-be/internal/order"
)

// SoldMap maps product name to the total quantity sold for one day.
type SoldMap map[string]int

// ComputeSoldMap sums line quantities by product name across the
// orders picked up on date. Cancelled orders release their quantities.
// No matching orders yields an empty map, not an error.
func ComputeSoldMap(orders []order.Order, date string) SoldMap {
	m := make(SoldMap)
	for _, o := range orders {
		if o.PickupDate != date || o.Status == order.StatusCancelled {
			continue
		}
		for _, item := range o.Items {
			m[item.Name] += item.Qty
		}
	}
	return m
}

// Sold returns the quantity sold for a product, zero when absent.
func (m SoldMap) Sold(name string) int {
	return m[name]
}

// Remaining returns how many units of p can still be sold today.
// Never negative, even if past orders overshot the cap.
func Remaining(p catalog.Product, m SoldMap) int {
	left := p.DailyCap() - m.Sold(p.Name)
	if left < 0 {
		return 0
	}
	return left
}
