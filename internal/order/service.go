package order

import (
	"context"
	"errors"
	"fmt"

	"mariabakery-be/internal/cart"
	"mariabakery-be/internal/catalog"
	"mariabakery-be/internal/logger"
	"mariabakery-be/internal/notify"

	"go.uber.org/zap"
)

var ErrUnknownProduct = errors.New("product not in catalog")

// SubmitInput carries everything intake needs to build an order.
type SubmitInput struct {
	CustomerName  string
	CustomerEmail string
	PickupDate    string
	PickupTime    string
	Lines         []cart.Line
}

// Service validates and constructs orders and drives staff status
// transitions. Slot and quota checks are advisory pre-checks against
// the latest snapshot, not atomic reservations: two near-simultaneous
// submissions can both pass before either commits.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*Order, error)
	MarkReady(ctx context.Context, orderID string) (*Order, error)
	Cancel(ctx context.Context, orderID string) error
	OrdersForDate(date, slot string) []Order
}

type service struct {
	store      Store
	feed       *Feed
	catalog    *catalog.Catalog
	dispatcher notify.Dispatcher
}

func NewService(store Store, feed *Feed, cat *catalog.Catalog, dispatcher notify.Dispatcher) Service {
	return &service{
		store:      store,
		feed:       feed,
		catalog:    cat,
		dispatcher: dispatcher,
	}
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Submit"),
		zap.String("pickup_date", input.PickupDate),
		zap.String("pickup_time", input.PickupTime),
	)

	// 1. Validate submission fields
	if input.CustomerName == "" {
		return nil, ErrNameRequired
	}
	if input.CustomerEmail == "" {
		return nil, ErrEmailRequired
	}
	if input.PickupTime == "" {
		return nil, ErrSlotRequired
	}
	if !KnownSlot(input.PickupTime) {
		return nil, ErrUnknownSlot
	}
	if len(input.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	// 2. Advisory slot check against the latest snapshot
	if IsSlotFull(s.feed.Orders(), input.PickupDate, input.PickupTime) {
		log.Warn("slot full at submission time")
		return nil, ErrSlotUnavailable
	}

	// 3. Snapshot line items at current catalog prices
	items := make([]Item, 0, len(input.Lines))
	for _, line := range input.Lines {
		price, ok := s.catalog.PriceOf(line.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, line.Name)
		}
		items = append(items, Item{Name: line.Name, Qty: line.Qty, Price: price})
	}

	order := &Order{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		PickupDate:    input.PickupDate,
		PickupTime:    input.PickupTime,
		Items:         items,
		Status:        StatusPending,
	}

	// 4. Persist; the caller keeps its cart when this fails
	if err := s.store.AddOrder(ctx, order); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}

	log.Info("order submitted",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Int("total", order.TotalPrice()),
	)

	return order, nil
}

// MarkReady transitions a pending order to ready and fires the pickup
// notification. Notification failure never rolls back the transition.
func (s *service) MarkReady(ctx context.Context, orderID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "MarkReady"),
		zap.String("order_id", orderID),
	)

	current, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}
	if current.Status != StatusPending {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, StatusReady)
	}

	if err := s.store.UpdateStatus(ctx, orderID, StatusReady); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}
	current.Status = StatusReady

	if err := s.dispatcher.Notify(ctx, pickupNotification(current)); err != nil {
		// Best-effort: the order is ready regardless.
		log.Warn("pickup notification failed", zap.Error(err))
	}

	log.Info("order marked ready")
	return &current, nil
}

// Cancel releases the order's slot seat and daily quantities. Both
// pending and ready orders may be cancelled.
func (s *service) Cancel(ctx context.Context, orderID string) error {
	current, err := s.findOrder(orderID)
	if err != nil {
		return err
	}
	if current.Status == StatusCancelled {
		return fmt.Errorf("%w: already cancelled", ErrInvalidTransition)
	}

	if err := s.store.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}

	logger.FromCtx(ctx).Info("order cancelled", zap.String("order_id", orderID))
	return nil
}

// OrdersForDate returns the snapshot's orders for a pickup date,
// optionally narrowed to one slot.
func (s *service) OrdersForDate(date, slot string) []Order {
	var out []Order
	for _, o := range s.feed.Orders() {
		if o.PickupDate != date {
			continue
		}
		if slot != "" && o.PickupTime != slot {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *service) findOrder(orderID string) (Order, error) {
	for _, o := range s.feed.Orders() {
		if o.ID == orderID {
			return o, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

func pickupNotification(o Order) notify.Message {
	body := fmt.Sprintf("Dear %s,\n\nYour bakery order for pickup on %s at %s is ready.\n\nOrder contents:\n",
		o.CustomerName, o.PickupDate, o.PickupTime)
	for _, item := range o.Items {
		body += fmt.Sprintf("- %s x %d\n", item.Name, item.Qty)
	}
	body += "\nThank you for your order!"

	return notify.Message{
		Recipient: o.CustomerEmail,
		Subject:   fmt.Sprintf("Pickup notice: %s, your order is ready", o.CustomerName),
		Body:      body,
	}
}
