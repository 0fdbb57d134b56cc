// Package session holds per-customer interactive state: the cart and
// the selected pickup date. Sessions are the only place this state
// lives; core computations stay pure functions over snapshots.
package session

import (
	"context"
	"sync"
	"time"

	"mariabakery-be/internal/cart"
	"mariabakery-be/internal/catalog"
	"mariabakery-be/internal/inventory"
	"mariabakery-be/internal/order"
)

const dateLayout = "2006-01-02"

// Session serializes access to one customer's cart and selected date.
// HTTP handlers and the order feed run on different goroutines.
type Session struct {
	mu   sync.Mutex
	id   string
	date string
	cart *cart.Cart
}

func newSession(id string) *Session {
	return &Session{
		id:   id,
		date: time.Now().Format(dateLayout),
		cart: cart.New(),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// SetDate switches the session's pickup date. Derived views are
// recomputed from the next snapshot read, so nothing else changes here.
func (s *Session) SetDate(date string) {
	s.mu.Lock()
	s.date = date
	s.mu.Unlock()
}

// UpdateCartQuantity applies a gated cart mutation against the given
// order snapshot: the sold map for the session's selected date is
// recomputed and the per-day cap enforced by the cart.
func (s *Session) UpdateCartQuantity(p catalog.Product, delta int, orders []order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sold := inventory.ComputeSoldMap(orders, s.date)
	return s.cart.UpdateQuantity(p, delta, sold)
}

// CartLines returns a copy of the cart contents.
func (s *Session) CartLines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// ClearCart empties the cart without submitting.
func (s *Session) ClearCart() {
	s.mu.Lock()
	s.cart.Clear()
	s.mu.Unlock()
}

// Submit hands the cart to intake for the session's selected date. The
// cart is cleared if and only if the store write succeeds; on any
// failure the caller keeps its pre-submission cart and may retry.
func (s *Session) Submit(ctx context.Context, intake order.Service, name, email, slot string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := intake.Submit(ctx, order.SubmitInput{
		CustomerName:  name,
		CustomerEmail: email,
		PickupDate:    s.date,
		PickupTime:    slot,
		Lines:         s.cart.Lines(),
	})
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	return o, nil
}

// Manager hands out sessions by ID, creating them on first use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		s = newSession(id)
		m.sessions[id] = s
	}
	return s
}

// End drops the session and its cart.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
