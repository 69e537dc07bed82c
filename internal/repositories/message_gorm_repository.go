package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/models"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{db: db}
}

// Create creates a new message in the database.
func (r *GORMMessageRepository) Create(msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetByUser retrieves messages where the user is sender or recipient.
func (r *GORMMessageRepository) GetByUser(userID string) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at").Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for user %s: %w", userID, err)
	}
	return msgs, nil
}

// GetAll retrieves every message ordered by creation time.
func (r *GORMMessageRepository) GetAll() ([]models.Message, error) {
	var msgs []models.Message
	if err := r.db.Order("created_at").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}
