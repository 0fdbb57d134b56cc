package handler

import (
	"errors"
	"net/http"

	"mariabakery-be/internal/order"
	"mariabakery-be/internal/stats"

	"github.com/go-chi/chi/v5"
)

// ListOrders returns the day's orders, optionally narrowed to one slot.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !validDate(date) {
		writeJSONError(w, "date must be yyyy-mm-dd", http.StatusBadRequest)
		return
	}

	slot := r.URL.Query().Get("slot")
	if slot != "" && !order.KnownSlot(slot) {
		writeJSONError(w, "unknown pickup time slot", http.StatusBadRequest)
		return
	}

	orders := h.intake.OrdersForDate(date, slot)
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) MarkOrderReady(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	o, err := h.intake.MarkReady(r.Context(), id)
	if err != nil {
		h.writeTransitionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.intake.Cancel(r.Context(), id); err != nil {
		h.writeTransitionError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		writeJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, order.ErrInvalidTransition):
		writeJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, order.ErrStoreWrite):
		writeJSONError(w, "status update could not be saved, please retry", http.StatusServiceUnavailable)
	default:
		writeJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}

// Stats summarizes one day's orders for the staff dashboard.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !validDate(date) {
		writeJSONError(w, "date must be yyyy-mm-dd", http.StatusBadRequest)
		return
	}

	summary := stats.Summarize(h.intake.OrdersForDate(date, ""))

	writeJSON(w, http.StatusOK, map[string]any{
		"date":    date,
		"summary": summary,
		"top":     summary.Top(3),
	})
}
