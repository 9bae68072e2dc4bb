package services

import (
	"errors"
	"math"

	"sanjeevika-shop/models"
	"sanjeevika-shop/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *ProductService) GetAll(page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.productRepo.GetAll(page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *ProductService) GetByCategory(category string) ([]models.Product, error) {
	return s.productRepo.GetByCategory(category)
}

func (s *ProductService) GetByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *ProductService) Create(req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		SKU:         req.SKU,
		KeyBenefits: req.KeyBenefits,
		Tags:        req.Tags,
		IsActive:    true,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(id string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if req.Title != "" {
		product.Title = req.Title
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Image != "" {
		product.Image = req.Image
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.SKU != "" {
		product.SKU = req.SKU
	}
	if req.KeyBenefits != nil {
		product.KeyBenefits = req.KeyBenefits
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(id string) error {
	return s.productRepo.Delete(id)
}
