package repositories

import "skillswap/internal/models"

// NotificationRepository defines the interface for notification-feed data
// access.
type NotificationRepository interface {
	Create(n *models.Notification) error
	GetByID(id string) (*models.Notification, error)
	// GetByUser returns the feed owned by the user, insertion order.
	GetByUser(userID string) ([]models.Notification, error)
	Update(n *models.Notification) error
	GetAll() ([]models.Notification, error)
}
