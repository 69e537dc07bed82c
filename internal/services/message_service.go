package services

import (
	"fmt"
	"log"

	"skillswap/internal/models"
	"skillswap/internal/repositories"
)

// MessageService owns the direct-message log between users.
type MessageService struct {
	messageRepo   repositories.MessageRepository
	userRepo      repositories.UserRepository
	notifications *NotificationService
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, notifications *NotificationService) *MessageService {
	return &MessageService{
		messageRepo:   messageRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Send appends an unread message and notifies the recipient.
func (s *MessageService) Send(fromUserID, toUserID, subject, body string) (*models.Message, error) {
	if _, err := s.userRepo.GetByID(toUserID); err != nil {
		return nil, fmt.Errorf("target user: %w", err)
	}

	msg := &models.Message{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Subject:    subject,
		Body:       body,
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	sender, err := s.userRepo.GetByID(fromUserID)
	if err != nil {
		log.Printf("Warning: sender %s not found for message notification: %v", fromUserID, err)
		return msg, nil
	}
	if _, err := s.notifications.Notify(toUserID, models.NotificationMessage,
		"New Message", fmt.Sprintf("You have a new message from %s", sender.Name)); err != nil {
		log.Printf("Warning: failed to notify user %s of message %s: %v", toUserID, msg.ID, err)
	}

	return msg, nil
}

// ListForUser returns every message where the user is sender or recipient,
// augmented with counterpart projections for display.
func (s *MessageService) ListForUser(userID string) ([]models.MessageView, error) {
	msgs, err := s.messageRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	views := []models.MessageView{}
	for _, msg := range msgs {
		fromUser, err := s.userRepo.GetByID(msg.FromUserID)
		if err != nil {
			return nil, fmt.Errorf("sender of message %s: %w", msg.ID, err)
		}
		toUser, err := s.userRepo.GetByID(msg.ToUserID)
		if err != nil {
			return nil, fmt.Errorf("recipient of message %s: %w", msg.ID, err)
		}
		views = append(views, models.MessageView{
			Message:  msg,
			FromUser: fromUser.Summary(),
			ToUser:   toUser.Summary(),
		})
	}
	return views, nil
}
