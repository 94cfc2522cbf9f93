package service

import (
	"context"
	"fmt"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
)

type CreateCategoryParams struct {
	Name        string
	Description string
}

type CategoryService interface {
	CreateCategory(ctx context.Context, params CreateCategoryParams) (int64, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id int64, params repository.UpdateCategoryParams) error
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, params CreateCategoryParams) (int64, error) {
	id, err := s.categoryRepo.Create(ctx, repository.CreateCategoryParams{
		Name:        params.Name,
		Description: params.Description,
	})
	if err != nil {
		return 0, fmt.Errorf("category repository create: %w", err)
	}

	return id, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	return s.categoryRepo.Get(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("category repository list all: %w", err)
	}

	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, params repository.UpdateCategoryParams) error {
	return s.categoryRepo.Update(ctx, id, params)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}
