package services

import (
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products. An empty catalog is reported as
// not-found, not as an empty success.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NotFound("no products found")
	}
	return products, nil
}

// GetProductByID retrieves a single product by ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a product from a validated payload.
func (s *ProductService) CreateProduct(payload models.ProductPayload) (*models.Product, error) {
	product := &models.Product{
		ProductName: payload.ProductName,
		Price:       *payload.Price,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct fully replaces the mutable fields of an existing product.
func (s *ProductService) UpdateProduct(id uint, payload models.ProductPayload) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.ProductName = payload.ProductName
	product.Price = *payload.Price
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by ID.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}
