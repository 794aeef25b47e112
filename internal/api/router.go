package api

import (
	"net/http"

	"sales-service/internal/api/handlers"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Customers *handlers.CustomerHandler
	Products  *handlers.ProductHandler
	Orders    *handlers.OrderHandler
	Analytics *handlers.AnalyticsHandler
}

// NewRouter wires the HTTP surface. Reads are always permitted; order
// creation is the only guarded write.
func NewRouter(h Handlers, authorize WriteAuthorizer) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/customers/", h.Customers.List)
	r.Post("/customers/", h.Customers.Create)

	r.Get("/products/", h.Products.List)
	r.Post("/products/", h.Products.Create)

	r.Get("/orders/", h.Orders.List)
	r.With(requireWriteAuth(authorize)).Post("/orders/", h.Orders.Create)

	r.Get("/analytics/sales-summary/", h.Analytics.SalesSummary)
	r.Get("/analytics/top-customers/", h.Analytics.TopCustomers)
	r.Get("/analytics/top-products/", h.Analytics.TopProducts)

	return r
}
