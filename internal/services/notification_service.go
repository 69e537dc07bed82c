package services

import (
	"fmt"
	"log"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
	"skillswap/internal/repositories"
	"skillswap/pkg/rabbitmq"
)

// NotificationService owns the per-user notification feed. Entries are
// appended only as side effects of ledger and messaging events.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	mqClient         *rabbitmq.Client
}

// NewNotificationService creates a new NotificationService. The RabbitMQ
// client may be nil, in which case event publication is skipped.
func NewNotificationService(notificationRepo repositories.NotificationRepository, mqClient *rabbitmq.Client) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		mqClient:         mqClient,
	}
}

// Notify appends a feed entry for the user and publishes a notification event
// when a broker is configured. The feed append is the authoritative write;
// a failed publish is logged and does not fail the operation.
func (s *NotificationService) Notify(userID, notifType, title, message string) (*models.Notification, error) {
	n := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if err := s.notificationRepo.Create(n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if s.mqClient != nil {
		event := rabbitmq.NotificationEvent{
			NotificationID: n.ID,
			UserID:         n.UserID,
			Type:           n.Type,
			Title:          n.Title,
		}
		if err := s.mqClient.PublishNotificationEvent(event); err != nil {
			log.Printf("Warning: failed to publish notification event for %s: %v", n.ID, err)
		}
	}

	return n, nil
}

// ListForUser returns the user's feed in insertion order.
func (s *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	ns, err := s.notificationRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if ns == nil {
		ns = []models.Notification{}
	}
	return ns, nil
}

// MarkRead sets isRead on a notification owned by the acting user. Marking an
// already-read notification is a no-op, not an error.
func (s *NotificationService) MarkRead(notificationID, actingUserID string) (*models.Notification, error) {
	n, err := s.notificationRepo.GetByID(notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != actingUserID {
		return nil, fmt.Errorf("notification %s is not owned by the caller: %w", notificationID, apperrors.ErrForbidden)
	}

	n.IsRead = true
	if err := s.notificationRepo.Update(n); err != nil {
		return nil, err
	}
	return n, nil
}
