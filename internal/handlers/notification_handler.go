package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"skillswap/internal/services"
)

// NotificationHandler handles HTTP requests for the notification feed.
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterRoutes registers the notification routes with the Fiber app.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Get("/", h.HandleListNotifications)
	notificationRoutes.Put("/:id", h.HandleMarkRead)
}

// HandleListNotifications lists the caller's feed.
func (h *NotificationHandler) HandleListNotifications(c *fiber.Ctx) error {
	notifications, err := h.notificationService.ListForUser(currentUserID(c))
	if err != nil {
		log.Printf("Error listing notifications: %v", err)
		return respondError(c, err)
	}
	return c.JSON(notifications)
}

// HandleMarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	n, err := h.notificationService.MarkRead(c.Params("id"), currentUserID(c))
	if err != nil {
		log.Printf("Error marking notification %s read: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Notification marked as read",
		"notification": n,
	})
}
