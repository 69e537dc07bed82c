package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
)

// MemoryNotificationRepository is an in-memory implementation of
// NotificationRepository.
type MemoryNotificationRepository struct {
	notifications []models.Notification
	mu            sync.RWMutex
}

// NewMemoryNotificationRepository creates a new instance of
// MemoryNotificationRepository.
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{}
}

// Create appends a new notification, assigning an ID and creation time if
// unset.
func (r *MemoryNotificationRepository) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.notifications = append(r.notifications, *n)
	return nil
}

// GetByID returns a notification by ID.
func (r *MemoryNotificationRepository) GetByID(id string) (*models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			n := r.notifications[i]
			return &n, nil
		}
	}
	return nil, fmt.Errorf("notification with ID %s: %w", id, apperrors.ErrNotFound)
}

// GetByUser returns the feed owned by the user.
func (r *MemoryNotificationRepository) GetByUser(userID string) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Notification
	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

// Update replaces the stored record matching the notification's ID.
func (r *MemoryNotificationRepository) Update(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == n.ID {
			r.notifications[i] = *n
			return nil
		}
	}
	return fmt.Errorf("notification with ID %s: %w", n.ID, apperrors.ErrNotFound)
}

// GetAll returns every notification in insertion order.
func (r *MemoryNotificationRepository) GetAll() ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}
