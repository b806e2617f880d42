package services

import (
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/repositories"
)

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users. An empty table is reported as
// not-found, not as an empty success.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NotFound("no users found")
	}
	return users, nil
}

// GetUserByID retrieves a single user by ID.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates a user from a validated payload. The store assigns
// the ID and enforces email uniqueness.
func (s *UserService) CreateUser(payload models.UserPayload) (*models.User, error) {
	user := &models.User{
		Name:    payload.Name,
		Address: payload.Address,
		Email:   payload.Email,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser fully replaces the mutable fields of an existing user.
func (s *UserService) UpdateUser(id uint, payload models.UserPayload) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Name = payload.Name
	user.Address = payload.Address
	user.Email = payload.Email
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a user by ID. Orders referencing the user are left
// untouched; whether deletion should cascade or be blocked is an open
// product decision, so the store's foreign key is the only arbiter.
func (s *UserService) DeleteUser(id uint) error {
	return s.repo.Delete(id)
}
