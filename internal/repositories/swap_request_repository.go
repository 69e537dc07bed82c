package repositories

import "skillswap/internal/models"

// SwapRequestRepository defines the interface for swap-request data access.
type SwapRequestRepository interface {
	Create(req *models.SwapRequest) error
	// CreateIfNoPending appends the request only if no pending request
	// exists for its ordered (from, to) pair, returning ErrConflict
	// otherwise. Check and append happen in one critical section.
	CreateIfNoPending(req *models.SwapRequest) error
	GetByID(id string) (*models.SwapRequest, error)
	// GetByUser returns requests where the user is sender or recipient,
	// insertion order.
	GetByUser(userID string) ([]models.SwapRequest, error)
	Update(req *models.SwapRequest) error
	Delete(id string) error
	GetAll() ([]models.SwapRequest, error)
}
