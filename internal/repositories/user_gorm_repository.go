package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves all users from the database.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", apperrors.FromDB(err))
	}
	return users, nil
}

// GetByID retrieves a user by ID from the database.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("user with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, apperrors.FromDB(err))
	}
	return &user, nil
}

// Create inserts a new user. The database assigns the ID; a duplicate
// email surfaces as a conflict.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", apperrors.FromDB(err))
	}
	return nil
}

// Update fully replaces an existing user's mutable fields.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user) // Save writes every field, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", apperrors.FromDB(res.Error))
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("user with ID %d not found for update", user.ID)
	}
	return nil
}

// Delete removes a user by ID.
func (r *GORMUserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", apperrors.FromDB(res.Error))
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("user with ID %d not found for deletion", id)
	}
	return nil
}
