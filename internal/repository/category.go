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

type CreateCategoryParams struct {
	Name        string
	Description string
}

type UpdateCategoryParams struct {
	Name        *string
	Description *string
}

type CategoryRepository interface {
	WithDB(db db.DB) CategoryRepository
	Create(ctx context.Context, params CreateCategoryParams) (int64, error)
	Get(ctx context.Context, id int64) (model.Category, error)
	ListAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int64, params UpdateCategoryParams) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db db.DB
}

func NewCategoryRepository(db db.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r categoryRepository) WithDB(db db.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r categoryRepository) Create(ctx context.Context, params CreateCategoryParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id
	`, params.Name, params.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}

	return id, nil
}

func (r categoryRepository) Get(ctx context.Context, id int64) (model.Category, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		WHERE id = $1
	`, id)

	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, apperr.ErrCategoryNotFound
		}
		return model.Category{}, fmt.Errorf("get category: %w", err)
	}

	return c, nil
}

func (r categoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

func (r categoryRepository) Update(ctx context.Context, id int64, params UpdateCategoryParams) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description)
		WHERE id = $1
	`, id, params.Name, params.Description)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrCategoryNotFound
	}

	return nil
}

func (r categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrCategoryNotFound
	}

	return nil
}
