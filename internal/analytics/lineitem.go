package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one (order, product, quantity) association, denormalized with
// everything the aggregations group on.
type LineItem struct {
	OrderID       int
	OrderDate     time.Time
	CustomerID    int
	CustomerName  string
	CustomerEmail string
	ProductID     int
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
}

// Total is the single pricing rule: quantity × unit price in exact decimal
// arithmetic. Order totals and every aggregation go through it.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
