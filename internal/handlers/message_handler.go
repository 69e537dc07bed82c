package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillswap/internal/services"
)

// MessageHandler handles HTTP requests for direct messages.
type MessageHandler struct {
	messageService *services.MessageService
	validate       *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the message routes with the Fiber app.
func (h *MessageHandler) RegisterRoutes(router fiber.Router) {
	messageRoutes := router.Group("/messages")
	messageRoutes.Post("/", h.HandleSendMessage)
	messageRoutes.Get("/", h.HandleListMessages)
}

// SendMessageBody represents the request body for sending a message.
type SendMessageBody struct {
	ToUserID string `json:"toUserId" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// HandleSendMessage sends a direct message to another user.
func (h *MessageHandler) HandleSendMessage(c *fiber.Ctx) error {
	var body SendMessageBody
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing message body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(body); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"errors": errorMessages,
		})
	}

	msg, err := h.messageService.Send(currentUserID(c), body.ToUserID, body.Subject, body.Body)
	if err != nil {
		log.Printf("Error sending message: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent successfully",
		"data":    msg,
	})
}

// HandleListMessages lists the caller's sent and received messages.
func (h *MessageHandler) HandleListMessages(c *fiber.Ctx) error {
	views, err := h.messageService.ListForUser(currentUserID(c))
	if err != nil {
		log.Printf("Error listing messages: %v", err)
		return respondError(c, err)
	}
	return c.JSON(views)
}
