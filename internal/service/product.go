package service

import (
	"context"
	"fmt"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
)

type AddProductParams struct {
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

type ProductService interface {
	AddProduct(ctx context.Context, params AddProductParams) (int64, error)
	UpdateProduct(ctx context.Context, id int64, params repository.UpdateProductParams) error
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) AddProduct(ctx context.Context, params AddProductParams) (int64, error) {
	id, err := s.productRepo.Create(ctx, repository.CreateProductParams{
		Name:        params.Name,
		Sku:         params.Sku,
		Description: params.Description,
		Price:       params.Price,
		CostPrice:   params.CostPrice,
		Quantity:    params.Quantity,
		MinQuantity: params.MinQuantity,
		CategoryID:  params.CategoryID,
		SupplierID:  params.SupplierID,
	})
	if err != nil {
		return 0, fmt.Errorf("product repository create: %w", err)
	}

	return id, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, params repository.UpdateProductParams) error {
	return s.productRepo.Update(ctx, id, params)
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	return s.productRepo.Get(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all: %w", err)
	}

	return products, nil
}

func (s *productService) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	products, err := s.productRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("product repository search: %w", err)
	}

	return products, nil
}

func (s *productService) ListLowStock(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list low stock: %w", err)
	}

	return products, nil
}
