// Package handler exposes the storefront over HTTP. Handlers only
// decode, delegate, and map domain errors to status codes; every rule
// lives in the core packages.
package handler

import (
	"github.com/go-chi/chi/v5"

	"mariabakery-be/internal/catalog"
	"mariabakery-be/internal/logger"
	"mariabakery-be/internal/middleware"
	"mariabakery-be/internal/order"
	"mariabakery-be/internal/prefs"
	"mariabakery-be/internal/session"
)

type Handler struct {
	catalog  *catalog.Catalog
	feed     *order.Feed
	intake   order.Service
	sessions *session.Manager
	prefs    prefs.Store
}

func New(cat *catalog.Catalog, feed *order.Feed, intake order.Service, sessions *session.Manager, prefStore prefs.Store) *Handler {
	return &Handler{
		catalog:  cat,
		feed:     feed,
		intake:   intake,
		sessions: sessions,
		prefs:    prefStore,
	}
}

func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/availability", h.Availability)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.UpdateCartItem)
		r.Delete("/cart", h.ClearCart)

		r.Put("/session/date", h.SetDate)

		r.Get("/customer", h.GetSavedCustomer)
		r.Put("/customer", h.SaveCustomer)

		r.Post("/orders", h.SubmitOrder)

		r.Group(func(r chi.Router) {
			r.Use(middleware.StaffOnly)
			r.Get("/orders", h.ListOrders)
			r.Post("/orders/{id}/ready", h.MarkOrderReady)
			r.Post("/orders/{id}/cancel", h.CancelOrder)
			r.Get("/stats", h.Stats)
		})
	})

	return r
}
