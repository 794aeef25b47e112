package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sales-service/internal/models"
	"sales-service/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrderRepo struct {
	created     *models.Order
	createErr   error
	orders      []models.Order
	createCalls int
}

func (m *mockOrderRepo) CreateOrder(_ context.Context, _ int, _ []repository.OrderItemInput) (*models.Order, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockOrderRepo) GetAll(context.Context) ([]models.Order, error) {
	return m.orders, nil
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate(context.Context) { c.calls++ }

func sampleOrder() *models.Order {
	return &models.Order{
		OrderID:    42,
		CustomerID: 1,
		OrderDate:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{
				OrderItemID: 7,
				OrderID:     42,
				ProductID:   1,
				Quantity:    2,
				Product:     &models.Product{ProductID: 1, Name: "Widget", Price: decimal.RequireFromString("10.00")},
			},
		},
		TotalPrice: decimal.RequireFromString("20.00"),
	}
}

func TestOrderCreate(t *testing.T) {
	repo := &mockOrderRepo{created: sampleOrder()}
	inv := &countingInvalidator{}
	h := NewOrderHandler(repo, inv)

	body := `{"customer_id": 1, "items": [{"product_id": 1, "quantity": 2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/orders/42", rec.Header().Get("Location"))
	assert.Equal(t, 1, inv.calls)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(42), resp["order_id"])
	assert.Equal(t, "20.00", resp["total_price"])

	items, ok := resp["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(2), item["quantity"])
	product := item["product"].(map[string]any)
	assert.Equal(t, "10.00", product["price"])
}

func TestOrderCreate_ValidationErrorMapsTo400(t *testing.T) {
	repo := &mockOrderRepo{createErr: repository.ErrInvalidInput}
	h := NewOrderHandler(repo, nil)

	body := `{"customer_id": 1, "items": []}`
	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")
}

func TestOrderCreate_UnknownReferenceMapsTo400(t *testing.T) {
	repo := &mockOrderRepo{createErr: repository.ErrNotFound}
	h := NewOrderHandler(repo, nil)

	body := `{"customer_id": 999, "items": [{"product_id": 1, "quantity": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderCreate_BadJSONNeverReachesTheRepo(t *testing.T) {
	repo := &mockOrderRepo{}
	h := NewOrderHandler(repo, nil)

	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, repo.createCalls)
}

func TestOrderList(t *testing.T) {
	repo := &mockOrderRepo{orders: []models.Order{*sampleOrder()}}
	h := NewOrderHandler(repo, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "20.00", resp[0]["total_price"])
}

func TestOrderList_Empty(t *testing.T) {
	h := NewOrderHandler(&mockOrderRepo{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
