package repositories

import "skillswap/internal/models"

// MessageRepository defines the interface for direct-message data access.
type MessageRepository interface {
	Create(msg *models.Message) error
	// GetByUser returns messages where the user is sender or recipient,
	// insertion order.
	GetByUser(userID string) ([]models.Message, error)
	GetAll() ([]models.Message, error)
}
