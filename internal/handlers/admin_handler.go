package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"skillswap/internal/services"
)

// AdminHandler handles HTTP requests for moderation and analytics. The routes
// must be registered behind the admin middleware.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users", h.HandleListAllUsers)
	router.Put("/users/:id/ban", h.HandleBanUser)
	router.Put("/users/:id/unban", h.HandleUnbanUser)
	router.Get("/analytics", h.HandleAnalytics)
}

// HandleListAllUsers lists every user, including banned and private profiles.
func (h *AdminHandler) HandleListAllUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers()
	if err != nil {
		log.Printf("Error listing all users: %v", err)
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleBanUser sets the ban flag on a user.
func (h *AdminHandler) HandleBanUser(c *fiber.Ctx) error {
	user, err := h.adminService.SetBanned(c.Params("id"), true)
	if err != nil {
		log.Printf("Error banning user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User banned successfully",
		"user":    user,
	})
}

// HandleUnbanUser clears the ban flag on a user.
func (h *AdminHandler) HandleUnbanUser(c *fiber.Ctx) error {
	user, err := h.adminService.SetBanned(c.Params("id"), false)
	if err != nil {
		log.Printf("Error unbanning user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User unbanned successfully",
		"user":    user,
	})
}

// HandleAnalytics serves the aggregate platform counters.
func (h *AdminHandler) HandleAnalytics(c *fiber.Ctx) error {
	analytics, err := h.adminService.Analytics()
	if err != nil {
		log.Printf("Error computing analytics: %v", err)
		return respondError(c, err)
	}
	return c.JSON(analytics)
}
