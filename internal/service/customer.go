package service

import (
	"context"
	"fmt"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
)

type RegisterCustomerParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type CustomerService interface {
	RegisterCustomer(ctx context.Context, params RegisterCustomerParams) (int64, error)
	GetCustomer(ctx context.Context, id int64) (model.Customer, error)
	// GetCustomerWithOrders returns the customer and their order history.
	GetCustomerWithOrders(ctx context.Context, id int64) (model.Customer, []model.Order, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, params repository.UpdateCustomerParams) error
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (s *customerService) RegisterCustomer(ctx context.Context, params RegisterCustomerParams) (int64, error) {
	id, err := s.customerRepo.Create(ctx, repository.CreateCustomerParams{
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
	})
	if err != nil {
		return 0, fmt.Errorf("customer repository create: %w", err)
	}

	return id, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (model.Customer, error) {
	return s.customerRepo.Get(ctx, id)
}

func (s *customerService) GetCustomerWithOrders(ctx context.Context, id int64) (model.Customer, []model.Order, error) {
	customer, err := s.customerRepo.Get(ctx, id)
	if err != nil {
		return model.Customer{}, nil, err
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return model.Customer{}, nil, fmt.Errorf("order repository list all: %w", err)
	}

	var customerOrders []model.Order
	for _, o := range orders {
		if o.CustomerID != nil && *o.CustomerID == id {
			customerOrders = append(customerOrders, o)
		}
	}

	return customer, customerOrders, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer repository list all: %w", err)
	}

	return customers, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, query string) ([]model.Customer, error) {
	customers, err := s.customerRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("customer repository search: %w", err)
	}

	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, params repository.UpdateCustomerParams) error {
	return s.customerRepo.Update(ctx, id, params)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.customerRepo.Delete(ctx, id)
}
