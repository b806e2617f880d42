package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func floatPtr(f float64) *float64 { return &f }

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: 1, ProductName: "Laptop", Price: 1200.00},
		{ID: 2, ProductName: "Keyboard", Price: 75.50},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts_EmptyIsNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return([]models.Product{}, nil).Once()

	products, err := service.GetAllProducts()

	assert.Nil(t, products)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: 1, ProductName: "Laptop", Price: 1200.00}

	mockRepo.On("GetByID", uint(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByID", uint(99)).Return(nil, apperrors.NotFound("product with ID 99 not found")).Once()
	product, err = service.GetProductByID(99)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// A zero price is a legal price; the bound is non-negative, not positive.
	payload := models.ProductPayload{ProductName: "Sticker", Price: floatPtr(0)}

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 1
	}).Return(nil).Once()

	product, err := service.CreateProduct(payload)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), product.ID)
	assert.Equal(t, "Sticker", product.ProductName)
	assert.Equal(t, 0.0, product.Price)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	payload := models.ProductPayload{ProductName: "Ghost", Price: floatPtr(9.99)}

	mockRepo.On("GetByID", uint(99)).Return(nil, apperrors.NotFound("product with ID 99 not found")).Once()

	product, err := service.UpdateProduct(99, payload)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(1))

	mockRepo.On("Delete", uint(99)).Return(apperrors.NotFound("product with ID 99 not found for deletion")).Once()
	assert.ErrorIs(t, service.DeleteProduct(99), apperrors.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
