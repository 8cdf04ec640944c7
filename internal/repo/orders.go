package repo

import (
	"context"

	"gorm.io/gorm"

	"ecommerce-api/internal/models"
)

// CreateOrder writes the order row and its order_products association rows
// in one transaction. A failure on any association row rolls back everything,
// so a half-linked order can never be observed.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order, products []models.Product) (*models.Order, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products").Create(order).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.Model(order).Association("Products").Append(&products)
	})
	if err != nil {
		return nil, err
	}

	order.Products = products
	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order := models.Order{}
	if err := r.DB.WithContext(ctx).Preload("Products").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOrdersByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Products").
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
