package repo

import (
	"context"

	"gorm.io/gorm"

	"ecommerce-api/internal/models"
)

func (r *GormRepo) GetAccount(ctx context.Context, id uint) (*models.CustomerAccount, error) {
	account := models.CustomerAccount{}
	if err := r.DB.WithContext(ctx).Preload("Customer").First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *GormRepo) CreateAccount(ctx context.Context, account *models.CustomerAccount) (*models.CustomerAccount, error) {
	if err := r.DB.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *GormRepo) UpdateAccount(ctx context.Context, account *models.CustomerAccount) (*models.CustomerAccount, error) {
	if err := r.DB.WithContext(ctx).Save(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *GormRepo) DeleteAccount(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.CustomerAccount{}, id)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
