package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/models"
)

// MemoryMessageRepository is an in-memory implementation of MessageRepository.
type MemoryMessageRepository struct {
	messages []models.Message
	mu       sync.RWMutex
}

// NewMemoryMessageRepository creates a new instance of MemoryMessageRepository.
func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{}
}

// Create appends a new message, assigning an ID and creation time if unset.
func (r *MemoryMessageRepository) Create(msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, *msg)
	return nil
}

// GetByUser returns messages where the user is sender or recipient.
func (r *MemoryMessageRepository) GetByUser(userID string) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Message
	for i := range r.messages {
		if r.messages[i].FromUserID == userID || r.messages[i].ToUserID == userID {
			out = append(out, r.messages[i])
		}
	}
	return out, nil
}

// GetAll returns every message in insertion order.
func (r *MemoryMessageRepository) GetAll() ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}
