package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", apperrors.FromDB(err))
	}
	return products, nil
}

// GetByID retrieves a single product by ID from the database.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("product with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, apperrors.FromDB(err))
	}
	return &product, nil
}

// Create inserts a new product. The database assigns the ID.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", apperrors.FromDB(err))
	}
	return nil
}

// Update fully replaces an existing product's mutable fields.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", apperrors.FromDB(res.Error))
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("product with ID %d not found for update", product.ID)
	}
	return nil
}

// Delete removes a product by ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", apperrors.FromDB(res.Error))
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("product with ID %d not found for deletion", id)
	}
	return nil
}
