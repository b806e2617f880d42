package repositories

import "github.com/Heather-Rutherford/relational-databases-module-project/internal/models"

// OrderRepository defines the interface for order and association data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)

	// AddProduct inserts the (orderID, productID) association row. It does
	// not pre-check for an existing pair; the composite primary key is the
	// authority, and a duplicate surfaces as a conflict.
	AddProduct(orderID, productID uint) error
	RemoveProduct(orderID, productID uint) error
	GetProducts(orderID uint) ([]models.Product, error)
}
