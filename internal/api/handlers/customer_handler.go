package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"sales-service/internal/models"
	"sales-service/internal/repository"
)

// AnalyticsInvalidator drops cached analytics inputs after a write. A nil
// invalidator means the service runs uncached.
type AnalyticsInvalidator interface {
	Invalidate(ctx context.Context)
}

type CustomerHandler struct {
	repo        repository.CustomerRepository
	invalidator AnalyticsInvalidator
}

func NewCustomerHandler(repo repository.CustomerRepository, invalidator AnalyticsInvalidator) *CustomerHandler {
	return &CustomerHandler{repo: repo, invalidator: invalidator}
}

type CustomerCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.repo.GetAll(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal_error", "failed to get customers", nil)
		return
	}

	if customers == nil {
		customers = []models.Customer{}
	}
	WriteJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	c := models.Customer{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := h.repo.Create(r.Context(), &c); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			WriteError(w, http.StatusConflict, "duplicate", err.Error(), nil)
		case errors.Is(err, repository.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		default:
			WriteError(w, http.StatusInternalServerError, "internal_error", "failed to create customer", nil)
		}
		return
	}

	if h.invalidator != nil {
		h.invalidator.Invalidate(r.Context())
	}

	w.Header().Set("Location", "/customers/"+strconv.Itoa(c.CustomerID))
	WriteJSON(w, http.StatusCreated, c)
}
