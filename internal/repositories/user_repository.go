package repositories

import "github.com/Heather-Rutherford/relational-databases-module-project/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
}
