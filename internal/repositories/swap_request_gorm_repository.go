package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
)

// GORMSwapRequestRepository is a GORM implementation of SwapRequestRepository.
type GORMSwapRequestRepository struct {
	db *gorm.DB
}

// NewGORMSwapRequestRepository creates a new instance of
// GORMSwapRequestRepository.
func NewGORMSwapRequestRepository(db *gorm.DB) *GORMSwapRequestRepository {
	return &GORMSwapRequestRepository{db: db}
}

// Create creates a new swap request in the database.
func (r *GORMSwapRequestRepository) Create(req *models.SwapRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if err := r.db.Create(req).Error; err != nil {
		return fmt.Errorf("failed to create swap request: %w", err)
	}
	return nil
}

// GetByID retrieves a swap request by its ID.
func (r *GORMSwapRequestRepository) GetByID(id string) (*models.SwapRequest, error) {
	var req models.SwapRequest
	if err := r.db.First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("swap request with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get swap request by ID %s: %w", id, err)
	}
	return &req, nil
}

// GetByUser retrieves requests where the user is sender or recipient.
func (r *GORMSwapRequestRepository) GetByUser(userID string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := r.db.Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at").Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list swap requests for user %s: %w", userID, err)
	}
	return reqs, nil
}

// CreateIfNoPending inserts the request only when no pending one exists for
// its ordered (from, to) pair, as a single conditional INSERT so the check and
// the write cannot be interleaved by a concurrent create.
func (r *GORMSwapRequestRepository) CreateIfNoPending(req *models.SwapRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	res := r.db.Exec(
		`INSERT INTO swap_requests (id, from_user_id, to_user_id, message, status, created_at)
		 SELECT ?, ?, ?, ?, ?, ?
		 WHERE NOT EXISTS (
			SELECT 1 FROM swap_requests
			WHERE from_user_id = ? AND to_user_id = ? AND status = ?
		 )`,
		req.ID, req.FromUserID, req.ToUserID, req.Message, req.Status, req.CreatedAt,
		req.FromUserID, req.ToUserID, models.SwapStatusPending)
	if res.Error != nil {
		return fmt.Errorf("failed to create swap request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pending swap request from %s to %s already exists: %w",
			req.FromUserID, req.ToUserID, apperrors.ErrConflict)
	}
	return nil
}

// Update saves the full swap-request record.
func (r *GORMSwapRequestRepository) Update(req *models.SwapRequest) error {
	res := r.db.Model(&models.SwapRequest{}).Where("id = ?", req.ID).Select("*").Updates(req)
	if res.Error != nil {
		return fmt.Errorf("failed to update swap request %s: %w", req.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("swap request with ID %s: %w", req.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a swap request permanently.
func (r *GORMSwapRequestRepository) Delete(id string) error {
	res := r.db.Delete(&models.SwapRequest{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete swap request %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("swap request with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GetAll retrieves every swap request ordered by creation time.
func (r *GORMSwapRequestRepository) GetAll() ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	if err := r.db.Order("created_at").Find(&reqs).Error; err != nil {
		return nil, fmt.Errorf("failed to list swap requests: %w", err)
	}
	return reqs, nil
}
