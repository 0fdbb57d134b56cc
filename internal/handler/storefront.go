package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mariabakery-be/internal/cart"
	"mariabakery-be/internal/catalog"
	"mariabakery-be/internal/inventory"
	"mariabakery-be/internal/logger"
	"mariabakery-be/internal/order"
	"mariabakery-be/internal/prefs"

	"go.uber.org/zap"
)

// ListProducts returns the menu, optionally narrowed to one category.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var products []catalog.Product
	if category != "" {
		products = h.catalog.ByCategory(category)
	} else {
		products = h.catalog.Products()
	}

	writeJSON(w, http.StatusOK, products)
}

type productAvailability struct {
	catalog.Product
	Sold      int `json:"sold"`
	Remaining int `json:"remaining"`
}

type slotAvailability struct {
	Slot      string `json:"slot"`
	Occupancy int    `json:"occupancy"`
	Full      bool   `json:"full"`
}

// Availability reports per-product remaining quantity and slot
// occupancy for a date, recomputed from the latest snapshot.
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !validDate(date) {
		writeJSONError(w, "date must be yyyy-mm-dd", http.StatusBadRequest)
		return
	}

	orders := h.feed.Orders()
	sold := inventory.ComputeSoldMap(orders, date)

	products := make([]productAvailability, 0, len(h.catalog.Products()))
	for _, p := range h.catalog.Products() {
		products = append(products, productAvailability{
			Product:   p,
			Sold:      sold.Sold(p.Name),
			Remaining: inventory.Remaining(p, sold),
		})
	}

	slots := make([]slotAvailability, 0, len(order.Slots))
	for _, s := range order.Slots {
		occ := order.SlotOccupancy(orders, date, s)
		slots = append(slots, slotAvailability{
			Slot:      s,
			Occupancy: occ,
			Full:      occ >= order.MaxOrdersPerSlot,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":     date,
		"products": products,
		"slots":    slots,
	})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":  sess.SelectedDate(),
		"lines": sess.CartLines(),
	})
}

type updateCartRequest struct {
	ProductID string `json:"product_id"`
	Delta     int    `json:"delta"`
}

// UpdateCartItem applies a signed quantity delta, gated by the selected
// day's remaining quantity.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}

	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.catalog.GetByID(req.ProductID)
	if err != nil {
		writeJSONError(w, "product not found", http.StatusNotFound)
		return
	}

	if err := sess.UpdateCartQuantity(product, req.Delta, h.feed.Orders()); err != nil {
		if errors.Is(err, cart.ErrQuotaExceeded) {
			// The cart is unchanged; tell the client what is left.
			sold := inventory.ComputeSoldMap(h.feed.Orders(), sess.SelectedDate())
			writeJSON(w, http.StatusConflict, map[string]any{
				"error":     "daily product quota exceeded",
				"remaining": inventory.Remaining(product, sold),
			})
			return
		}
		writeJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"lines": sess.CartLines()})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}

	sess.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

type setDateRequest struct {
	Date string `json:"date"`
}

func (h *Handler) SetDate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}

	var req setDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validDate(req.Date) {
		writeJSONError(w, "date must be yyyy-mm-dd", http.StatusBadRequest)
		return
	}

	sess.SetDate(req.Date)
	writeJSON(w, http.StatusOK, map[string]string{"date": req.Date})
}

func (h *Handler) GetSavedCustomer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}

	customer, err := prefs.SavedCustomer(r.Context(), h.prefs, sess.ID())
	if err != nil {
		// Convenience data only: degrade to empty instead of failing.
		logger.FromCtx(r.Context()).Warn("failed to load saved customer", zap.Error(err))
		customer = prefs.Customer{}
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}

	var customer prefs.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := prefs.SaveCustomer(r.Context(), h.prefs, sess.ID(), customer); err != nil {
		writeJSONError(w, "failed to save customer", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type submitOrderRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Slot  string `json:"slot"`
}

// SubmitOrder turns the session's cart into a pending order for its
// selected date. Every outcome is explicit: success returns the order,
// any failure returns a typed message and keeps the cart.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}

	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := sess.Submit(r.Context(), h.intake, req.Name, req.Email, req.Slot)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrSlotUnavailable):
			writeJSONError(w, err.Error(), http.StatusConflict)
		case errors.Is(err, order.ErrStoreWrite):
			writeJSONError(w, "order could not be saved, please retry", http.StatusServiceUnavailable)
		default:
			writeJSONError(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	// Remember the customer for the next visit; best-effort.
	if err := prefs.SaveCustomer(r.Context(), h.prefs, sess.ID(), prefs.Customer{
		Name:  req.Name,
		Email: req.Email,
	}); err != nil {
		logger.FromCtx(r.Context()).Warn("failed to remember customer", zap.Error(err))
	}

	writeJSON(w, http.StatusCreated, o)
}
