package order

// MaxOrdersPerSlot is how many concurrent orders a pickup window accepts
// before it is locked on the storefront.
const MaxOrdersPerSlot = 3

// Slots are the fixed pickup windows customers can reserve.
var Slots = []string{"14:00", "14:30", "15:00", "15:30", "16:00"}

// KnownSlot reports whether slot is one of the fixed pickup windows.
func KnownSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotOccupancy counts non-cancelled orders booked at (date, slot).
func SlotOccupancy(orders []Order, date, slot string) int {
	count := 0
	for _, o := range orders {
		if o.PickupDate == date && o.PickupTime == slot && o.Status != StatusCancelled {
			count++
		}
	}
	return count
}

// IsSlotFull reports whether the slot reached capacity for the date.
// Cancelled orders release their seat.
func IsSlotFull(orders []Order, date, slot string) bool {
	return SlotOccupancy(orders, date, slot) >= MaxOrdersPerSlot
}
