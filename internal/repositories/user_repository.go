package repositories

import "skillswap/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// GetAll returns every user in insertion order.
	GetAll() ([]models.User, error)
	Update(user *models.User) error
}
