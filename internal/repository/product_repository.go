package repository

import (
	"context"
	"errors"
	"fmt"
	"sales-service/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepo struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name required", ErrInvalidInput)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: product price cannot be negative", ErrInvalidInput)
	}
	if p.Price.Exponent() < -2 {
		return fmt.Errorf("%w: product price must have at most 2 decimal places", ErrInvalidInput)
	}

	sql := `
		INSERT INTO products (
			name,
			price
	) VALUES ($1, $2)
	RETURNING product_id
	`

	err := r.db.QueryRow(ctx, sql,
		p.Name,
		p.Price,
	).Scan(&p.ProductID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: ID must be positive", ErrInvalidInput)
	}

	sql := `
		SELECT
			product_id,
			name,
			price
		FROM products WHERE product_id = $1
		`

	var product models.Product

	err := r.db.QueryRow(ctx, sql, id).Scan(
		&product.ProductID,
		&product.Name,
		&product.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}

	return &product, nil
}

// GetAll returns products ordered by ID. A non-empty search narrows by
// case-insensitive substring over the name.
func (r *productRepo) GetAll(ctx context.Context, search string) ([]models.Product, error) {
	sql := `
    SELECT
        product_id,
        name,
		price
    FROM products`

	args := []any{}
	if search != "" {
		sql += `
	WHERE name ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	sql += `
	ORDER BY product_id`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		var p models.Product

		err := rows.Scan(&p.ProductID,
			&p.Name,
			&p.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan products: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return products, nil
}
