package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts a new order. The database assigns the ID; a dangling
// user_id surfaces as a conflict through the foreign key constraint.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", apperrors.FromDB(err))
	}
	return nil
}

// GetByID retrieves an order by ID from the database.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("order with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, apperrors.FromDB(err))
	}
	return &order, nil
}

// GetByUserID retrieves every order placed by the given user.
func (r *GORMOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, apperrors.FromDB(err))
	}
	return orders, nil
}

// AddProduct inserts the association row. The composite primary key turns
// a repeated (order_id, product_id) pair into a conflict at commit time,
// which is the only protection against a concurrent duplicate insert.
func (r *GORMOrderRepository) AddProduct(orderID, productID uint) error {
	row := models.OrderProduct{OrderID: orderID, ProductID: productID}
	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add product %d to order %d: %w", productID, orderID, apperrors.FromDB(err))
	}
	return nil
}

// RemoveProduct deletes the association row for the given pair.
func (r *GORMOrderRepository) RemoveProduct(orderID, productID uint) error {
	res := r.db.Delete(&models.OrderProduct{}, "order_id = ? AND product_id = ?", orderID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove product %d from order %d: %w", productID, orderID, apperrors.FromDB(res.Error))
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("product %d not found in order %d", productID, orderID)
	}
	return nil
}

// GetProducts returns the products associated with an order through an
// explicit join on the association table.
func (r *GORMOrderRepository) GetProducts(orderID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Model(&models.Product{}).
		Joins("JOIN order_products ON order_products.product_id = products.id").
		Where("order_products.order_id = ?", orderID).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products for order %d: %w", orderID, apperrors.FromDB(err))
	}
	return products, nil
}
