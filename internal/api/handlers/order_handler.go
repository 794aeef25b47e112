package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sales-service/internal/models"
	"sales-service/internal/repository"
)

type OrderHandler struct {
	repo        repository.OrderRepository
	invalidator AnalyticsInvalidator
}

func NewOrderHandler(repo repository.OrderRepository, invalidator AnalyticsInvalidator) *OrderHandler {
	return &OrderHandler{repo: repo, invalidator: invalidator}
}

type OrderCreateRequest struct {
	CustomerID int                         `json:"customer_id"`
	Items      []repository.OrderItemInput `json:"items"`
}

type OrderItemResponse struct {
	OrderItemID int              `json:"order_item_id"`
	Quantity    int              `json:"quantity"`
	Product     *ProductResponse `json:"product,omitempty"`
}

type OrderResponse struct {
	OrderID    int                 `json:"order_id"`
	CustomerID int                 `json:"customer_id"`
	OrderDate  time.Time           `json:"order_date"`
	Items      []OrderItemResponse `json:"items"`
	TotalPrice string              `json:"total_price"`
}

func newOrderResponse(o models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		item := OrderItemResponse{
			OrderItemID: it.OrderItemID,
			Quantity:    it.Quantity,
		}
		if it.Product != nil {
			p := newProductResponse(*it.Product)
			item.Product = &p
		}
		items = append(items, item)
	}

	return OrderResponse{
		OrderID:    o.OrderID,
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate,
		Items:      items,
		TotalPrice: o.TotalPrice.StringFixed(2),
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal_error", "failed to get orders", nil)
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, newOrderResponse(o))
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	order, err := h.repo.CreateOrder(r.Context(), req.CustomerID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		case errors.Is(err, repository.ErrNotFound):
			// an unresolvable reference is a client mistake, not a server one
			WriteError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		default:
			WriteError(w, http.StatusInternalServerError, "internal_error", "failed to create order", nil)
		}
		return
	}

	if h.invalidator != nil {
		h.invalidator.Invalidate(r.Context())
	}

	w.Header().Set("Location", "/orders/"+strconv.Itoa(order.OrderID))
	WriteJSON(w, http.StatusCreated, newOrderResponse(*order))
}
