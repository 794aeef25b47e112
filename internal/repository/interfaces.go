package repository

import (
	"context"
	"sales-service/internal/analytics"
	"sales-service/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int) (*models.Customer, error)
	GetAll(ctx context.Context, search string) ([]models.Customer, error)
	Count(ctx context.Context) (int, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetAll(ctx context.Context, search string) ([]models.Product, error)
}

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, customerID int, items []OrderItemInput) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}

// AnalyticsRepository feeds the aggregator: the full line-item set plus the
// global customer count. Date filtering happens in the aggregator, not here.
type AnalyticsRepository interface {
	LineItems(ctx context.Context) ([]analytics.LineItem, error)
	CountCustomers(ctx context.Context) (int, error)
}
