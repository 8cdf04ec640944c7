package service

import (
	"context"

	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repo"
	"ecommerce-api/internal/transport"
)

type CustomerService struct {
	Repo *repo.GormRepo
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	return s.Repo.GetCustomer(ctx, id)
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.GetCustomers(ctx)
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req transport.CreateCustomerRequest) (*models.Customer, error) {
	if fields := transport.Validate(req); fields != nil {
		return nil, invalid(fields)
	}

	customer := &models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	return s.Repo.CreateCustomer(ctx, customer)
}

// UpdateCustomer replaces name, email and phone wholesale. PUT semantics,
// not a partial patch.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, req transport.CreateCustomerRequest) (*models.Customer, error) {
	customer, err := s.Repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields := transport.Validate(req); fields != nil {
		return nil, invalid(fields)
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone

	return s.Repo.UpdateCustomer(ctx, customer)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.Repo.DeleteCustomer(ctx, id)
}
