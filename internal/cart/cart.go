// Package cart holds the per-session shopping cart. A cart never
// touches the order store; intake snapshots its lines on submission.
package cart

import (
	"mariabakery-be/internal/catalog"
	"mariabakery-be/internal/inventory"
)

// Line is one cart entry. The product name is the identity key.
type Line struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Cart is owned by a single customer session and is not safe for
// concurrent use; the session serializes access.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// UpdateQuantity applies a signed quantity delta for the product,
// gated by the day's sold map:
//   - a resulting quantity of zero or less removes the line (removing
//     an absent line is a no-op),
//   - a positive resulting quantity must keep sold + qty within the
//     product's daily cap, otherwise ErrQuotaExceeded is returned and
//     the cart is left unchanged.
func (c *Cart) UpdateQuantity(p catalog.Product, delta int, sold inventory.SoldMap) error {
	idx := c.find(p.Name)

	current := 0
	if idx >= 0 {
		current = c.lines[idx].Qty
	}
	newQty := current + delta

	if newQty <= 0 {
		if idx >= 0 {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		}
		return nil
	}

	if sold.Sold(p.Name)+newQty > p.DailyCap() {
		return ErrQuotaExceeded
	}

	if idx >= 0 {
		c.lines[idx].Qty = newQty
	} else {
		c.lines = append(c.lines, Line{Name: p.Name, Qty: newQty})
	}
	return nil
}

// Qty returns the current quantity for a product name, zero if absent.
func (c *Cart) Qty(name string) int {
	if idx := c.find(name); idx >= 0 {
		return c.lines[idx].Qty
	}
	return 0
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear drops all lines. Called after a successful submission.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) find(name string) int {
	for i, l := range c.lines {
		if l.Name == name {
			return i
		}
	}
	return -1
}
