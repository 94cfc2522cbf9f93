package service

import (
	"context"
	"fmt"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
)

type CreateSupplierParams struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
}

type SupplierService interface {
	CreateSupplier(ctx context.Context, params CreateSupplierParams) (int64, error)
	GetSupplier(ctx context.Context, id int64) (model.Supplier, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, params repository.UpdateSupplierParams) error
	DeleteSupplier(ctx context.Context, id int64) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) CreateSupplier(ctx context.Context, params CreateSupplierParams) (int64, error) {
	id, err := s.supplierRepo.Create(ctx, repository.CreateSupplierParams{
		Name:          params.Name,
		Email:         params.Email,
		Phone:         params.Phone,
		Address:       params.Address,
		ContactPerson: params.ContactPerson,
	})
	if err != nil {
		return 0, fmt.Errorf("supplier repository create: %w", err)
	}

	return id, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, id int64) (model.Supplier, error) {
	return s.supplierRepo.Get(ctx, id)
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	suppliers, err := s.supplierRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("supplier repository list all: %w", err)
	}

	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id int64, params repository.UpdateSupplierParams) error {
	return s.supplierRepo.Update(ctx, id, params)
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id int64) error {
	return s.supplierRepo.Delete(ctx, id)
}
