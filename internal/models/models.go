package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID int       `json:"customer_id"`
	Name       string    `json:"name" validate:"required,min=1,max=100"`
	Email      string    `json:"email" validate:"required,email"`
	JoinedOn   time.Time `json:"joined_on"`
}

type Product struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

type Order struct {
	OrderID    int             `json:"order_id"`
	CustomerID int             `json:"customer_id"`
	OrderDate  time.Time       `json:"order_date"`
	Items      []OrderItem     `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderItem struct {
	OrderItemID int      `json:"order_item_id"`
	OrderID     int      `json:"order_id"`
	ProductID   int      `json:"product_id"`
	Quantity    int      `json:"quantity"`
	Product     *Product `json:"product,omitempty"`
}
