package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/storage/db"
)

type CreateProductParams struct {
	Name        string
	Sku         string
	Description string
	Price       float64
	CostPrice   float64
	Quantity    int
	MinQuantity int
	CategoryID  *int64
	SupplierID  *int64
}

// UpdateProductParams lists the fields a product may legally change. Nil
// means "leave unchanged"; stock is adjusted only through AdjustStock.
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *float64
	CostPrice   *float64
	MinQuantity *int
	CategoryID  *int64
	SupplierID  *int64
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	Create(ctx context.Context, params CreateProductParams) (int64, error)
	Get(ctx context.Context, id int64) (model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
	Update(ctx context.Context, id int64, params UpdateProductParams) error
	// AdjustStock applies a signed delta to quantity on hand. The store's
	// CHECK constraint rejects transitions below zero.
	AdjustStock(ctx context.Context, id int64, delta int) error
	ListLowStock(ctx context.Context) ([]model.Product, error)
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `p.id, p.name, p.sku, p.description, p.price, p.cost_price,
	p.quantity, p.min_quantity, p.category_id, p.supplier_id, p.created_at, p.updated_at`

func (r productRepository) Create(ctx context.Context, params CreateProductParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, sku, description, price, cost_price,
			quantity, min_quantity, category_id, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, params.Name, params.Sku, params.Description, params.Price, params.CostPrice,
		params.Quantity, params.MinQuantity, params.CategoryID, params.SupplierID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}

	return id, nil
}

func (r productRepository) Get(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products p
		WHERE p.id = $1
	`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ErrProductNotFound
		}
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (r productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return collectProductsWithCategory(rows)
}

func (r productRepository) Search(ctx context.Context, query string) ([]model.Product, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.name ILIKE $1 OR p.sku ILIKE $1 OR p.description ILIKE $1
		ORDER BY p.id
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	return collectProductsWithCategory(rows)
}

func (r productRepository) Update(ctx context.Context, id int64, params UpdateProductParams) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET
			name         = COALESCE($2, name),
			description  = COALESCE($3, description),
			price        = COALESCE($4, price),
			cost_price   = COALESCE($5, cost_price),
			min_quantity = COALESCE($6, min_quantity),
			category_id  = COALESCE($7, category_id),
			supplier_id  = COALESCE($8, supplier_id),
			updated_at   = NOW()
		WHERE id = $1
	`, id, params.Name, params.Description, params.Price, params.CostPrice,
		params.MinQuantity, params.CategoryID, params.SupplierID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrProductNotFound
	}

	return nil
}

func (r productRepository) AdjustStock(ctx context.Context, id int64, delta int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1
	`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrProductNotFound
	}

	return nil
}

func (r productRepository) ListLowStock(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.quantity <= p.min_quantity
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}

	return collectProductsWithCategory(rows)
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Sku, &p.Description, &p.Price, &p.CostPrice,
		&p.Quantity, &p.MinQuantity, &p.CategoryID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func collectProductsWithCategory(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Sku, &p.Description, &p.Price, &p.CostPrice,
			&p.Quantity, &p.MinQuantity, &p.CategoryID, &p.SupplierID,
			&p.CreatedAt, &p.UpdatedAt, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}
