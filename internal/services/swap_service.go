package services

import (
	"errors"
	"fmt"
	"log"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
	"skillswap/internal/repositories"
)

// SwapService owns the swap-request ledger: creation with duplicate-pending
// suppression, status transitions, and sender-only deletion. Ledger writes
// emit derived notifications; the pair is not transactional.
type SwapService struct {
	swapRepo      repositories.SwapRequestRepository
	userRepo      repositories.UserRepository
	notifications *NotificationService
}

// NewSwapService creates a new SwapService.
func NewSwapService(swapRepo repositories.SwapRequestRepository, userRepo repositories.UserRepository, notifications *NotificationService) *SwapService {
	return &SwapService{
		swapRepo:      swapRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// CreateRequest appends a pending swap request from one user to another and
// notifies the recipient. At most one pending request may exist per ordered
// (from, to) pair; a new request becomes possible once the first is resolved.
func (s *SwapService) CreateRequest(fromUserID, toUserID, message string) (*models.SwapRequest, error) {
	if fromUserID == toUserID {
		return nil, fmt.Errorf("cannot send a swap request to yourself: %w", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(toUserID); err != nil {
		return nil, fmt.Errorf("target user: %w", err)
	}

	req := &models.SwapRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
		Status:     models.SwapStatusPending,
	}
	// The repository performs the pending check and the append atomically.
	if err := s.swapRepo.CreateIfNoPending(req); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("swap request already sent: %w", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create swap request: %w", err)
	}

	// The notification captures the sender's name at creation time.
	sender, err := s.userRepo.GetByID(fromUserID)
	if err != nil {
		log.Printf("Warning: sender %s not found for swap request notification: %v", fromUserID, err)
		return req, nil
	}
	if _, err := s.notifications.Notify(toUserID, models.NotificationSwapRequest,
		"New Swap Request", fmt.Sprintf("%s sent you a swap request", sender.Name)); err != nil {
		log.Printf("Warning: failed to notify user %s of swap request %s: %v", toUserID, req.ID, err)
	}

	return req, nil
}

// ListForUser returns every request where the user is sender or recipient,
// augmented with counterpart projections for display.
func (s *SwapService) ListForUser(userID string) ([]models.SwapRequestView, error) {
	reqs, err := s.swapRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	views := []models.SwapRequestView{}
	for _, req := range reqs {
		fromUser, err := s.userRepo.GetByID(req.FromUserID)
		if err != nil {
			return nil, fmt.Errorf("sender of swap request %s: %w", req.ID, err)
		}
		toUser, err := s.userRepo.GetByID(req.ToUserID)
		if err != nil {
			return nil, fmt.Errorf("recipient of swap request %s: %w", req.ID, err)
		}
		views = append(views, models.SwapRequestView{
			SwapRequest: req,
			FromUser:    fromUser.Summary(),
			ToUser:      toUser.Summary(),
		})
	}
	return views, nil
}

// UpdateStatus sets the request status and notifies the counterpart of the
// acting user. Either party may act; the status is written as given, with no
// transition validation.
func (s *SwapService) UpdateStatus(requestID, actingUserID, status string) (*models.SwapRequest, error) {
	req, err := s.swapRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}

	if req.FromUserID != actingUserID && req.ToUserID != actingUserID {
		return nil, fmt.Errorf("user %s may not modify swap request %s: %w", actingUserID, requestID, apperrors.ErrForbidden)
	}

	req.Status = status
	if err := s.swapRepo.Update(req); err != nil {
		return nil, err
	}

	counterpartID := req.FromUserID
	if actingUserID == req.FromUserID {
		counterpartID = req.ToUserID
	}
	if _, err := s.notifications.Notify(counterpartID, models.NotificationSwapResponse,
		"Swap Request Updated", fmt.Sprintf("Your swap request has been %s", status)); err != nil {
		log.Printf("Warning: failed to notify user %s of swap response on %s: %v", counterpartID, requestID, err)
	}

	return req, nil
}

// DeleteRequest removes a swap request permanently. Only the original sender
// may delete, regardless of status.
func (s *SwapService) DeleteRequest(requestID, actingUserID string) error {
	req, err := s.swapRepo.GetByID(requestID)
	if err != nil {
		return err
	}

	if req.FromUserID != actingUserID {
		return fmt.Errorf("user %s may not delete swap request %s: %w", actingUserID, requestID, apperrors.ErrForbidden)
	}

	return s.swapRepo.Delete(requestID)
}
