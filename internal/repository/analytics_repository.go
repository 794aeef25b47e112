package repository

import (
	"context"
	"fmt"
	"sales-service/internal/analytics"

	"github.com/jackc/pgx/v5/pgxpool"
)

type analyticsRepo struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

// LineItems returns every order item in the system joined with its order date,
// customer identity, and product pricing.
func (r *analyticsRepo) LineItems(ctx context.Context) ([]analytics.LineItem, error) {
	sql := `SELECT
	o.order_id,
	o.order_date,
	c.customer_id,
	c.name,
	c.email,
	p.product_id,
	p.name,
	oi.quantity,
	p.price
	FROM order_items oi
	JOIN orders o ON o.order_id = oi.order_id
	JOIN customers c ON c.customer_id = o.customer_id
	JOIN products p ON p.product_id = oi.product_id
	ORDER BY oi.order_item_id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}

	defer rows.Close()

	var items []analytics.LineItem

	for rows.Next() {
		var li analytics.LineItem

		err := rows.Scan(&li.OrderID,
			&li.OrderDate,
			&li.CustomerID,
			&li.CustomerName,
			&li.CustomerEmail,
			&li.ProductID,
			&li.ProductName,
			&li.Quantity,
			&li.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line items: %w", err)
		}

		items = append(items, li)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return items, nil
}

func (r *analyticsRepo) CountCustomers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
