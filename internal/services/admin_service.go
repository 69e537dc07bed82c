package services

import (
	"skillswap/internal/models"
	"skillswap/internal/repositories"
)

// AdminService handles moderation and platform analytics. Role authorization
// is enforced by the HTTP layer, not here.
type AdminService struct {
	userRepo         repositories.UserRepository
	swapRepo         repositories.SwapRequestRepository
	messageRepo      repositories.MessageRepository
	notificationRepo repositories.NotificationRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	userRepo repositories.UserRepository,
	swapRepo repositories.SwapRequestRepository,
	messageRepo repositories.MessageRepository,
	notificationRepo repositories.NotificationRepository,
) *AdminService {
	return &AdminService{
		userRepo:         userRepo,
		swapRepo:         swapRepo,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
	}
}

// ListUsers returns every user, including banned and private profiles.
func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// SetBanned sets or clears the ban flag on a user.
func (s *AdminService) SetBanned(id string, banned bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.IsBanned = banned
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Analytics computes the aggregate platform counters.
func (s *AdminService) Analytics() (*models.Analytics, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	swaps, err := s.swapRepo.GetAll()
	if err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.GetAll()
	if err != nil {
		return nil, err
	}
	notifications, err := s.notificationRepo.GetAll()
	if err != nil {
		return nil, err
	}

	a := &models.Analytics{
		TotalUsers:         len(users),
		TotalSwaps:         len(swaps),
		TotalMessages:      len(messages),
		TotalNotifications: len(notifications),
	}

	var ratingSum float64
	for _, u := range users {
		if !u.IsBanned {
			a.ActiveUsers++
		}
		ratingSum += u.Rating
	}
	if len(users) > 0 {
		a.AverageRating = ratingSum / float64(len(users))
	}

	for _, req := range swaps {
		switch req.Status {
		case models.SwapStatusPending:
			a.PendingSwaps++
		case models.SwapStatusAccepted:
			a.CompletedSwaps++
		}
	}

	return a, nil
}
