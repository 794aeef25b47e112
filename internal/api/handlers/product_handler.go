package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sales-service/internal/models"
	"sales-service/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	repo repository.ProductRepository
}

func NewProductHandler(repo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

type ProductCreateRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ProductResponse carries the price as a fixed 2-decimal string; raw floats
// never cross the wire.
type ProductResponse struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
}

func newProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price.StringFixed(2),
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAll(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal_error", "failed to get products", nil)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, newProductResponse(p))
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", "price must be a decimal string", nil)
		return
	}

	p := models.Product{
		Name:  req.Name,
		Price: price,
	}

	if err := h.repo.Create(r.Context(), &p); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		default:
			WriteError(w, http.StatusInternalServerError, "internal_error", "failed to create product", nil)
		}
		return
	}

	w.Header().Set("Location", "/products/"+strconv.Itoa(p.ProductID))
	WriteJSON(w, http.StatusCreated, newProductResponse(p))
}
