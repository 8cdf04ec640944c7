package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repo"
	"ecommerce-api/internal/transport"
)

type AccountService struct {
	Repo *repo.GormRepo
}

func (s *AccountService) GetAccount(ctx context.Context, id uint) (*models.CustomerAccount, error) {
	return s.Repo.GetAccount(ctx, id)
}

func (s *AccountService) CreateAccount(ctx context.Context, req transport.CreateAccountRequest) (*models.CustomerAccount, error) {
	if fields := transport.Validate(req); fields != nil {
		return nil, invalid(fields)
	}

	customer, err := s.Repo.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidField("customer_id", "customer does not exist")
		}
		return nil, err
	}

	account := &models.CustomerAccount{
		Username:   req.Username,
		Password:   req.Password,
		CustomerID: req.CustomerID,
	}

	if _, err := s.Repo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username already taken", ErrConflict)
		}
		return nil, err
	}

	account.Customer = *customer
	return account, nil
}

// UpdateAccount replaces username and password. The linked customer is
// never reassigned through this operation.
func (s *AccountService) UpdateAccount(ctx context.Context, id uint, req transport.UpdateAccountRequest) (*models.CustomerAccount, error) {
	account, err := s.Repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields := transport.Validate(req); fields != nil {
		return nil, invalid(fields)
	}

	account.Username = req.Username
	account.Password = req.Password

	if _, err := s.Repo.UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username already taken", ErrConflict)
		}
		return nil, err
	}

	return account, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id uint) error {
	return s.Repo.DeleteAccount(ctx, id)
}
