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

type CreateSupplierParams struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
}

type UpdateSupplierParams struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	ContactPerson *string
}

type SupplierRepository interface {
	WithDB(db db.DB) SupplierRepository
	Create(ctx context.Context, params CreateSupplierParams) (int64, error)
	Get(ctx context.Context, id int64) (model.Supplier, error)
	ListAll(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, id int64, params UpdateSupplierParams) error
	Delete(ctx context.Context, id int64) error
}

type supplierRepository struct {
	db db.DB
}

func NewSupplierRepository(db db.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r supplierRepository) WithDB(db db.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r supplierRepository) Create(ctx context.Context, params CreateSupplierParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO suppliers (name, email, phone, address, contact_person)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, params.Name, params.Email, params.Phone, params.Address, params.ContactPerson).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert supplier: %w", err)
	}

	return id, nil
}

func (r supplierRepository) Get(ctx context.Context, id int64) (model.Supplier, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, address, contact_person, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`, id)

	var s model.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.ContactPerson,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Supplier{}, apperr.ErrSupplierNotFound
		}
		return model.Supplier{}, fmt.Errorf("get supplier: %w", err)
	}

	return s, nil
}

func (r supplierRepository) ListAll(ctx context.Context) ([]model.Supplier, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, address, contact_person, created_at, updated_at
		FROM suppliers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []model.Supplier
	for rows.Next() {
		var s model.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address,
			&s.ContactPerson, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}

	return suppliers, nil
}

func (r supplierRepository) Update(ctx context.Context, id int64, params UpdateSupplierParams) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE suppliers SET
			name           = COALESCE($2, name),
			email          = COALESCE($3, email),
			phone          = COALESCE($4, phone),
			address        = COALESCE($5, address),
			contact_person = COALESCE($6, contact_person),
			updated_at     = NOW()
		WHERE id = $1
	`, id, params.Name, params.Email, params.Phone, params.Address, params.ContactPerson)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrSupplierNotFound
	}

	return nil
}

func (r supplierRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrSupplierNotFound
	}

	return nil
}
