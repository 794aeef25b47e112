package repository

import (
	"context"
	"fmt"
	"sales-service/internal/analytics"
	"sales-service/internal/models"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type orderRepo struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &orderRepo{db: db}
}

// validateOrderInput rejects requests that must never reach the store: empty
// item lists, non-positive quantities, non-positive references.
func validateOrderInput(customerID int, items []OrderItemInput) error {
	if customerID <= 0 {
		return fmt.Errorf("%w: customer ID must be positive", ErrInvalidInput)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: an order must have at least one item", ErrInvalidInput)
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
		}
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
		}
	}
	return nil
}

// CreateOrder persists an order and all its items as a single transaction.
// Either everything commits or nothing does.
func (r *orderRepo) CreateOrder(ctx context.Context, customerID int, items []OrderItemInput) (*models.Order, error) {
	if err := validateOrderInput(customerID, items); err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE customer_id = $1)`, customerID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer %d: %w", customerID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
	}

	productIDs := []int{}
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	sql := ` SELECT
	product_id,
	name,
	price
	FROM products WHERE product_id = ANY($1::int[])
	`

	rows, err := tx.Query(ctx, sql, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get products information: %w", err)
	}

	defer rows.Close()

	products := make(map[int]models.Product)

	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product data: %w", err)
		}
		products[p.ProductID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}
	rows.Close()

	for _, item := range items {
		if _, exist := products[item.ProductID]; !exist {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, item.ProductID)
		}
	}

	order := &models.Order{CustomerID: customerID, OrderDate: time.Now()}

	insert := `INSERT INTO orders (
	customer_id,
	order_date
	) VALUES ($1, $2)
	RETURNING order_id
	`

	if err := tx.QueryRow(ctx, insert, order.CustomerID, order.OrderDate).Scan(&order.OrderID); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	total := decimal.Zero
	for _, item := range items {
		product := products[item.ProductID]

		insertItemSQL := `INSERT INTO order_items (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING order_item_id
	`
		var itemID int
		if err := tx.QueryRow(ctx, insertItemSQL, order.OrderID, item.ProductID, item.Quantity).Scan(&itemID); err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}

		line := analytics.LineItem{Quantity: item.Quantity, UnitPrice: product.Price}
		total = total.Add(line.Total())

		order.Items = append(order.Items, models.OrderItem{
			OrderItemID: itemID,
			OrderID:     order.OrderID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Product:     &product,
		})
	}
	order.TotalPrice = total

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return order, nil
}

// GetAll returns orders newest first, each with its items, product detail, and
// computed total.
func (r *orderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	sql := `SELECT
	o.order_id,
	o.customer_id,
	o.order_date,
	oi.order_item_id,
	oi.product_id,
	oi.quantity,
	p.name,
	p.price
	FROM orders o
	LEFT JOIN order_items oi ON oi.order_id = o.order_id
	LEFT JOIN products p ON p.product_id = oi.product_id
	ORDER BY o.order_date DESC, o.order_id DESC, oi.order_item_id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders with items: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {
		var current models.Order
		var orderItemID pgtype.Int4
		var productID pgtype.Int4
		var quantity pgtype.Int4
		var productName pgtype.Text
		var productPrice *decimal.Decimal

		err := rows.Scan(&current.OrderID,
			&current.CustomerID,
			&current.OrderDate,
			&orderItemID,
			&productID,
			&quantity,
			&productName,
			&productPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order/item: %w", err)
		}

		if len(orders) == 0 || orders[len(orders)-1].OrderID != current.OrderID {
			current.Items = []models.OrderItem{}
			current.TotalPrice = decimal.Zero
			orders = append(orders, current)
		}
		order := &orders[len(orders)-1]

		if orderItemID.Valid {
			item := models.OrderItem{
				OrderItemID: int(orderItemID.Int32),
				OrderID:     order.OrderID,
				ProductID:   int(productID.Int32),
				Quantity:    int(quantity.Int32),
			}
			if productPrice != nil {
				item.Product = &models.Product{
					ProductID: int(productID.Int32),
					Name:      productName.String,
					Price:     *productPrice,
				}
				line := analytics.LineItem{Quantity: item.Quantity, UnitPrice: *productPrice}
				order.TotalPrice = order.TotalPrice.Add(line.Total())
			}
			order.Items = append(order.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return orders, nil
}
