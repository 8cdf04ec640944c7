package repo

import (
	"context"

	"gorm.io/gorm"

	"ecommerce-api/internal/models"
)

func (r *GormRepo) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer := models.Customer{}
	if err := r.DB.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormRepo) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormRepo) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.DB.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *GormRepo) UpdateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.DB.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *GormRepo) DeleteCustomer(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Customer{}, id)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
