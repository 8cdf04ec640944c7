package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repo"
	"ecommerce-api/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder validates the payload, resolves every requested product and
// writes the order plus its product links atomically. Product resolution
// happens before anything is persisted, so a missing product leaves no
// order row behind.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest, productIDs []uint) (*models.Order, error) {
	if fields := transport.Validate(req); fields != nil {
		return nil, invalid(fields)
	}

	date, err := time.Parse(transport.DateLayout, req.Date)
	if err != nil {
		return nil, invalidField("date", "must be a date in "+transport.DateLayout+" format")
	}

	productIDs = dedupe(productIDs)
	products, err := s.Repo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if len(products) != len(productIDs) {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, missingID(productIDs, products))
	}

	if _, err := s.Repo.GetCustomer(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidField("customer_id", "customer does not exist")
		}
		return nil, err
	}

	order := &models.Order{
		Date:       date,
		CustomerID: req.CustomerID,
	}

	return s.Repo.CreateOrder(ctx, order, products)
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.Repo.GetOrder(ctx, id)
}

func (s *OrderService) GetOrdersByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	return s.Repo.GetOrdersByCustomer(ctx, customerID)
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingID(wanted []uint, found []models.Product) uint {
	have := make(map[uint]struct{}, len(found))
	for _, p := range found {
		have[p.ID] = struct{}{}
	}
	for _, id := range wanted {
		if _, ok := have[id]; !ok {
			return id
		}
	}
	return 0
}
