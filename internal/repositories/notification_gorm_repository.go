package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
)

// GORMNotificationRepository is a GORM implementation of
// NotificationRepository.
type GORMNotificationRepository struct {
	db *gorm.DB
}

// NewGORMNotificationRepository creates a new instance of
// GORMNotificationRepository.
func NewGORMNotificationRepository(db *gorm.DB) *GORMNotificationRepository {
	return &GORMNotificationRepository{db: db}
}

// Create creates a new notification in the database.
func (r *GORMNotificationRepository) Create(n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if err := r.db.Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by its ID.
func (r *GORMNotificationRepository) GetByID(id string) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get notification by ID %s: %w", id, err)
	}
	return &n, nil
}

// GetByUser retrieves the feed owned by the user.
func (r *GORMNotificationRepository) GetByUser(userID string) ([]models.Notification, error) {
	var ns []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&ns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	return ns, nil
}

// Update saves the full notification record.
func (r *GORMNotificationRepository) Update(n *models.Notification) error {
	res := r.db.Model(&models.Notification{}).Where("id = ?", n.ID).Select("*").Updates(n)
	if res.Error != nil {
		return fmt.Errorf("failed to update notification %s: %w", n.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification with ID %s: %w", n.ID, apperrors.ErrNotFound)
	}
	return nil
}

// GetAll retrieves every notification ordered by creation time.
func (r *GORMNotificationRepository) GetAll() ([]models.Notification, error) {
	var ns []models.Notification
	if err := r.db.Order("created_at").Find(&ns).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return ns, nil
}
