package order

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired  = errors.New("customer name is required")
	ErrEmailRequired = errors.New("customer email is required")
	ErrSlotRequired  = errors.New("pickup time slot is required")
	ErrUnknownSlot   = errors.New("unknown pickup time slot")
	ErrEmptyCart     = errors.New("cart is empty")

	// -- Capacity --
	ErrSlotUnavailable = errors.New("pickup time slot is full")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	// -- Store Failures --
	ErrStoreWrite = errors.New("order store write failed")
)
