package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/repositories"
)

// EventPublisher publishes order lifecycle events. *rabbitmq.Client
// satisfies it; tests substitute a mock.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService handles business logic related to orders and the
// order-product association.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateOrder creates an order for an existing user. The order date is
// assigned here, never by the client. The user existence check runs
// first so a missing user reads as not-found; if the user disappears
// between the check and the insert, the foreign key constraint still
// rejects the write at commit.
func (s *OrderService) CreateOrder(payload models.OrderPayload) (*models.Order, error) {
	if _, err := s.userRepo.GetByID(payload.UserID); err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:    payload.UserID,
		OrderDate: time.Now(),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
	})
	return order, nil
}

// GetOrderByID retrieves an order with its associated products.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	products, err := s.orderRepo.GetProducts(id)
	if err != nil {
		return nil, err
	}
	order.Products = products
	return order, nil
}

// AddProductToOrder associates a product with an order and returns the
// order with its current product set. Both sides are checked first so
// the caller can tell which reference is missing; the duplicate check is
// left entirely to the association's composite key, because a
// check-then-insert here would race with a concurrent add.
func (s *OrderService) AddProductToOrder(orderID, productID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.AddProduct(orderID, productID); err != nil {
		return nil, err
	}

	s.publishEvent("order.product_added", map[string]interface{}{
		"order_id":   orderID,
		"product_id": productID,
	})

	products, err := s.orderRepo.GetProducts(orderID)
	if err != nil {
		return nil, err
	}
	order.Products = products
	return order, nil
}

// RemoveProductFromOrder removes the association between an order and a
// product. A pair that was never associated reads as not-found.
func (s *OrderService) RemoveProductFromOrder(orderID, productID uint) error {
	if err := s.orderRepo.RemoveProduct(orderID, productID); err != nil {
		return err
	}
	s.publishEvent("order.product_removed", map[string]interface{}{
		"order_id":   orderID,
		"product_id": productID,
	})
	return nil
}

// GetOrdersByUser retrieves every order placed by a user. A user with no
// orders is reported as not-found, not as an empty success.
func (s *OrderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperrors.NotFound("no orders found for user %d", userID)
	}
	return orders, nil
}

// GetProductsByOrder retrieves the products associated with an order. The
// order must exist; an order with no products is reported as not-found.
func (s *OrderService) GetProductsByOrder(orderID uint) ([]models.Product, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, err
	}
	products, err := s.orderRepo.GetProducts(orderID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NotFound("no products found for order %d", orderID)
	}
	return products, nil
}

// publishEvent sends an order event best-effort. Publication failures are
// logged and never fail the domain operation that triggered them.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	payload["event_id"] = uuid.New().String()
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
