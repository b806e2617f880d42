package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) AddProduct(orderID, productID uint) error {
	args := m.Called(orderID, productID)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveProduct(orderID, productID uint) error {
	args := m.Called(orderID, productID)
	return args.Error(0)
}

func (m *MockOrderRepository) GetProducts(orderID uint) ([]models.Product, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func newOrderServiceFixture() (*services.OrderService, *MockOrderRepository, *MockUserRepository, *MockProductRepository, *MockEventPublisher) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)
	publisher := new(MockEventPublisher)
	service := services.NewOrderService(orderRepo, userRepo, productRepo, publisher)
	return service, orderRepo, userRepo, productRepo, publisher
}

func TestOrderService_CreateOrder(t *testing.T) {
	service, orderRepo, userRepo, _, publisher := newOrderServiceFixture()

	userRepo.On("GetByID", uint(1)).Return(&models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Order).ID = 1
	}).Return(nil).Once()
	publisher.On("Publish", "order.created", mock.Anything).Return(nil).Once()

	before := time.Now()
	order, err := service.CreateOrder(models.OrderPayload{UserID: 1})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, uint(1), order.UserID)
	assert.False(t, order.OrderDate.Before(before), "order date must be assigned at creation")
	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOrderService_CreateOrder_UserNotFound(t *testing.T) {
	service, orderRepo, userRepo, _, _ := newOrderServiceFixture()

	userRepo.On("GetByID", uint(99)).Return(nil, apperrors.NotFound("user with ID 99 not found")).Once()

	order, err := service.CreateOrder(models.OrderPayload{UserID: 99})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOperation(t *testing.T) {
	service, orderRepo, userRepo, _, publisher := newOrderServiceFixture()

	userRepo.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	publisher.On("Publish", "order.created", mock.Anything).Return(assert.AnError).Once()

	order, err := service.CreateOrder(models.OrderPayload{UserID: 1})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	publisher.AssertExpectations(t)
}

func TestOrderService_AddProductToOrder(t *testing.T) {
	service, orderRepo, _, productRepo, publisher := newOrderServiceFixture()

	order := &models.Order{ID: 1, UserID: 1, OrderDate: time.Now()}
	product := models.Product{ID: 2, ProductName: "Keyboard", Price: 75.50}

	orderRepo.On("GetByID", uint(1)).Return(order, nil).Once()
	productRepo.On("GetByID", uint(2)).Return(&product, nil).Once()
	orderRepo.On("AddProduct", uint(1), uint(2)).Return(nil).Once()
	publisher.On("Publish", "order.product_added", mock.Anything).Return(nil).Once()
	orderRepo.On("GetProducts", uint(1)).Return([]models.Product{product}, nil).Once()

	result, err := service.AddProductToOrder(1, 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Len(t, result.Products, 1)
	assert.Equal(t, "Keyboard", result.Products[0].ProductName)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOrderService_AddProductToOrder_Duplicate(t *testing.T) {
	service, orderRepo, _, productRepo, publisher := newOrderServiceFixture()

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{ID: 1, UserID: 1}, nil).Once()
	productRepo.On("GetByID", uint(2)).Return(&models.Product{ID: 2}, nil).Once()
	orderRepo.On("AddProduct", uint(1), uint(2)).Return(apperrors.Conflict("duplicated key")).Once()

	result, err := service.AddProductToOrder(1, 2)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_AddProductToOrder_MissingReferences(t *testing.T) {
	service, orderRepo, _, productRepo, _ := newOrderServiceFixture()

	// Missing order
	orderRepo.On("GetByID", uint(9)).Return(nil, apperrors.NotFound("order with ID 9 not found")).Once()
	_, err := service.AddProductToOrder(9, 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Missing product
	orderRepo.On("GetByID", uint(1)).Return(&models.Order{ID: 1}, nil).Once()
	productRepo.On("GetByID", uint(9)).Return(nil, apperrors.NotFound("product with ID 9 not found")).Once()
	_, err = service.AddProductToOrder(1, 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	orderRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOrderService_RemoveProductFromOrder(t *testing.T) {
	service, orderRepo, _, _, publisher := newOrderServiceFixture()

	orderRepo.On("RemoveProduct", uint(1), uint(2)).Return(nil).Once()
	publisher.On("Publish", "order.product_removed", mock.Anything).Return(nil).Once()

	assert.NoError(t, service.RemoveProductFromOrder(1, 2))

	orderRepo.On("RemoveProduct", uint(1), uint(9)).
		Return(apperrors.NotFound("product 9 not found in order 1")).Once()
	assert.ErrorIs(t, service.RemoveProductFromOrder(1, 9), apperrors.ErrNotFound)

	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOrderService_GetOrdersByUser(t *testing.T) {
	service, orderRepo, _, _, _ := newOrderServiceFixture()

	expected := []models.Order{{ID: 1, UserID: 1, OrderDate: time.Now()}}
	orderRepo.On("GetByUserID", uint(1)).Return(expected, nil).Once()

	orders, err := service.GetOrdersByUser(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)

	// A user with no orders is a not-found outcome.
	orderRepo.On("GetByUserID", uint(2)).Return([]models.Order{}, nil).Once()
	orders, err = service.GetOrdersByUser(2)
	assert.Nil(t, orders)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	orderRepo.AssertExpectations(t)
}

func TestOrderService_GetProductsByOrder(t *testing.T) {
	service, orderRepo, _, _, _ := newOrderServiceFixture()

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{ID: 1}, nil)
	orderRepo.On("GetProducts", uint(1)).Return([]models.Product{{ID: 2, ProductName: "Mouse", Price: 25}}, nil).Once()

	products, err := service.GetProductsByOrder(1)
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	// An order with no products is a not-found outcome.
	orderRepo.On("GetProducts", uint(1)).Return([]models.Product{}, nil).Once()
	products, err = service.GetProductsByOrder(1)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// A missing order is reported before the association is consulted.
	orderRepo.On("GetByID", uint(9)).Return(nil, apperrors.NotFound("order with ID 9 not found")).Once()
	_, err = service.GetProductsByOrder(9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	orderRepo.AssertExpectations(t)
}
