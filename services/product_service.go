package services

import (
	"cart-widget/models"
	"cart-widget/repositories"
	"context"
	"math"
)

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (s *ProductService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.productRepo.GetAllCategories(ctx)
}

// GetAllProducts returns every listed product, in grid order.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAllProducts(ctx)
}

func (s *ProductService) GetProductsPage(ctx context.Context, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, err := s.productRepo.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	total := len(products)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	// Compared before multiplying so huge page numbers cannot overflow.
	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := total
	if limit < total-start {
		end = start + limit
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products[start:end],
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetProductByID(ctx, id)
}
