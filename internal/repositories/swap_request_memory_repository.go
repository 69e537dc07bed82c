package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
)

// MemorySwapRequestRepository is an in-memory implementation of
// SwapRequestRepository.
type MemorySwapRequestRepository struct {
	requests []models.SwapRequest
	mu       sync.RWMutex
}

// NewMemorySwapRequestRepository creates a new instance of
// MemorySwapRequestRepository.
func NewMemorySwapRequestRepository() *MemorySwapRequestRepository {
	return &MemorySwapRequestRepository{}
}

// Create appends a new swap request, assigning an ID and creation time if
// unset.
func (r *MemorySwapRequestRepository) Create(req *models.SwapRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	r.requests = append(r.requests, *req)
	return nil
}

// CreateIfNoPending appends the request unless a pending one already exists
// for the same ordered (from, to) pair. The scan and the append run under a
// single write lock, so two racing creates cannot both see "no pending".
func (r *MemorySwapRequestRepository) CreateIfNoPending(req *models.SwapRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		existing := &r.requests[i]
		if existing.FromUserID == req.FromUserID && existing.ToUserID == req.ToUserID &&
			existing.Status == models.SwapStatusPending {
			return fmt.Errorf("pending swap request from %s to %s already exists: %w",
				req.FromUserID, req.ToUserID, apperrors.ErrConflict)
		}
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	r.requests = append(r.requests, *req)
	return nil
}

// GetByID returns a swap request by ID.
func (r *MemorySwapRequestRepository) GetByID(id string) (*models.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			req := r.requests[i]
			return &req, nil
		}
	}
	return nil, fmt.Errorf("swap request with ID %s: %w", id, apperrors.ErrNotFound)
}

// GetByUser returns requests where the user is sender or recipient.
func (r *MemorySwapRequestRepository) GetByUser(userID string) ([]models.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.SwapRequest
	for i := range r.requests {
		if r.requests[i].FromUserID == userID || r.requests[i].ToUserID == userID {
			out = append(out, r.requests[i])
		}
	}
	return out, nil
}

// Update replaces the stored record matching the request's ID.
func (r *MemorySwapRequestRepository) Update(req *models.SwapRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == req.ID {
			r.requests[i] = *req
			return nil
		}
	}
	return fmt.Errorf("swap request with ID %s: %w", req.ID, apperrors.ErrNotFound)
}

// Delete removes a swap request permanently.
func (r *MemorySwapRequestRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("swap request with ID %s: %w", id, apperrors.ErrNotFound)
}

// GetAll returns every swap request in insertion order.
func (r *MemorySwapRequestRepository) GetAll() ([]models.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SwapRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}
