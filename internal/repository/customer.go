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

type CreateCustomerParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// UpdateCustomerParams lists the fields a customer may legally change.
type UpdateCustomerParams struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

type CustomerRepository interface {
	WithDB(db db.DB) CustomerRepository
	Create(ctx context.Context, params CreateCustomerParams) (int64, error)
	Get(ctx context.Context, id int64) (model.Customer, error)
	ListAll(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, query string) ([]model.Customer, error)
	Update(ctx context.Context, id int64, params UpdateCustomerParams) error
	Delete(ctx context.Context, id int64) error
}

type customerRepository struct {
	db db.DB
}

func NewCustomerRepository(db db.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r customerRepository) WithDB(db db.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r customerRepository) Create(ctx context.Context, params CreateCustomerParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone, address)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING id
	`, params.Name, params.Email, params.Phone, params.Address).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}

	return id, nil
}

func (r customerRepository) Get(ctx context.Context, id int64) (model.Customer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(email, ''), phone, address, created_at, updated_at
		FROM customers
		WHERE id = $1
	`, id)

	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, apperr.ErrCustomerNotFound
		}
		return model.Customer{}, fmt.Errorf("get customer: %w", err)
	}

	return c, nil
}

func (r customerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(email, ''), phone, address, created_at, updated_at
		FROM customers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return collectCustomers(rows)
}

func (r customerRepository) Search(ctx context.Context, query string) ([]model.Customer, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(email, ''), phone, address, created_at, updated_at
		FROM customers
		WHERE name ILIKE $1 OR email ILIKE $1
		ORDER BY id
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}

	return collectCustomers(rows)
}

func (r customerRepository) Update(ctx context.Context, id int64, params UpdateCustomerParams) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE customers SET
			name       = COALESCE($2, name),
			email      = COALESCE(NULLIF($3, ''), email),
			phone      = COALESCE($4, phone),
			address    = COALESCE($5, address),
			updated_at = NOW()
		WHERE id = $1
	`, id, params.Name, params.Email, params.Phone, params.Address)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrCustomerNotFound
	}

	return nil
}

func (r customerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrCustomerNotFound
	}

	return nil
}

func collectCustomers(rows pgx.Rows) ([]model.Customer, error) {
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return customers, nil
}
