package service

import (
	"context"

	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repo"
	"ecommerce-api/internal/transport"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if fields := transport.Validate(req); fields != nil {
		return nil, invalid(fields)
	}

	product := &models.Product{
		Name:  req.Name,
		Price: *req.Price,
	}

	return s.Repo.CreateProduct(ctx, product)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req transport.CreateProductRequest) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields := transport.Validate(req); fields != nil {
		return nil, invalid(fields)
	}

	product.Name = req.Name
	product.Price = *req.Price

	return s.Repo.UpdateProduct(ctx, product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProduct(ctx, id)
}
