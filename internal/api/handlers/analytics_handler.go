package handlers

import (
	"net/http"

	"sales-service/internal/analytics"
	"sales-service/internal/repository"
)

// AnalyticsHandler serves the three read-only aggregations. Filters never
// fail a request: malformed dates fall back to "no bound" and empty data
// renders zero or empty results.
type AnalyticsHandler struct {
	repo repository.AnalyticsRepository
}

func NewAnalyticsHandler(repo repository.AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{repo: repo}
}

func (h *AnalyticsHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rng := analytics.ParseRange(q.Get("from"), q.Get("to"))

	items, err := h.repo.LineItems(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal_error", "failed to load line items", nil)
		return
	}

	count, err := h.repo.CountCustomers(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal_error", "failed to count customers", nil)
		return
	}

	WriteJSON(w, http.StatusOK, analytics.Summarize(items, rng, count))
}

func (h *AnalyticsHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rng := analytics.ParseRange(q.Get("from"), q.Get("to"))

	items, err := h.repo.LineItems(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal_error", "failed to load line items", nil)
		return
	}

	WriteJSON(w, http.StatusOK, analytics.TopCustomers(items, rng))
}

func (h *AnalyticsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rng := analytics.ParseRange(q.Get("from"), q.Get("to"))

	items, err := h.repo.LineItems(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal_error", "failed to load line items", nil)
		return
	}

	WriteJSON(w, http.StatusOK, analytics.TopProducts(items, rng))
}
