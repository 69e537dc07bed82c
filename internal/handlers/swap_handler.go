package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillswap/internal/services"
)

// SwapHandler handles HTTP requests for the swap-request ledger.
type SwapHandler struct {
	swapService *services.SwapService
	validate    *validator.Validate
}

// NewSwapHandler creates a new SwapHandler.
func NewSwapHandler(swapService *services.SwapService) *SwapHandler {
	return &SwapHandler{
		swapService: swapService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the swap-request routes with the Fiber app.
func (h *SwapHandler) RegisterRoutes(router fiber.Router) {
	swapRoutes := router.Group("/swap-requests")
	swapRoutes.Post("/", h.HandleCreateRequest)
	swapRoutes.Get("/", h.HandleListRequests)
	swapRoutes.Put("/:id", h.HandleUpdateStatus)
	swapRoutes.Delete("/:id", h.HandleDeleteRequest)
}

// CreateSwapRequestBody represents the request body for creating a swap
// request.
type CreateSwapRequestBody struct {
	ToUserID string `json:"toUserId" validate:"required"`
	Message  string `json:"message"`
}

// HandleCreateRequest creates a pending swap request to another user.
func (h *SwapHandler) HandleCreateRequest(c *fiber.Ctx) error {
	var body CreateSwapRequestBody
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing swap request body: %v", err)
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

	req, err := h.swapService.CreateRequest(currentUserID(c), body.ToUserID, body.Message)
	if err != nil {
		log.Printf("Error creating swap request: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Swap request sent successfully",
		"request": req,
	})
}

// HandleListRequests lists the caller's sent and received swap requests.
func (h *SwapHandler) HandleListRequests(c *fiber.Ctx) error {
	views, err := h.swapService.ListForUser(currentUserID(c))
	if err != nil {
		log.Printf("Error listing swap requests: %v", err)
		return respondError(c, err)
	}
	return c.JSON(views)
}

// UpdateSwapStatusBody represents the request body for a status transition.
type UpdateSwapStatusBody struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateStatus sets the status of a swap request the caller is party to.
func (h *SwapHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var body UpdateSwapStatusBody
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status is required",
		})
	}

	req, err := h.swapService.UpdateStatus(c.Params("id"), currentUserID(c), body.Status)
	if err != nil {
		log.Printf("Error updating swap request %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Swap request updated successfully",
		"request": req,
	})
}

// HandleDeleteRequest removes a swap request; only the sender may delete.
func (h *SwapHandler) HandleDeleteRequest(c *fiber.Ctx) error {
	if err := h.swapService.DeleteRequest(c.Params("id"), currentUserID(c)); err != nil {
		log.Printf("Error deleting swap request %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Swap request deleted successfully",
	})
}
