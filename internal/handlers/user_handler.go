package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"skillswap/internal/models"
	"skillswap/internal/services"
)

const maxPhotoSize = 5 * 1024 * 1024 // 5 MB

// UserHandler handles HTTP requests for profiles and directory search.
type UserHandler struct {
	userService *services.UserService
	uploadDir   string
}

// NewUserHandler creates a new UserHandler. Uploaded photos are written under
// uploadDir and referenced as /uploads/<file>.
func NewUserHandler(userService *services.UserService, uploadDir string) *UserHandler {
	return &UserHandler{
		userService: userService,
		uploadDir:   uploadDir,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Put("/profile", h.HandleUpdateProfile)
	userRoutes.Get("/:id", h.HandleGetUser)

	router.Get("/search/users", h.HandleSearchUsers)
}

// HandleListUsers lists public profiles, excluding the caller.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListPublic(currentUserID(c))
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleGetUser looks up a single profile.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// updateProfileJSON is the JSON form of a partial profile edit. Pointer fields
// distinguish "absent" from "set to zero".
type updateProfileJSON struct {
	Name          *string   `json:"name"`
	Location      *string   `json:"location"`
	SkillsOffered *[]string `json:"skillsOffered"`
	SkillsWanted  *[]string `json:"skillsWanted"`
	Availability  *[]string `json:"availability"`
	IsPublic      *bool     `json:"isPublic"`
}

// HandleUpdateProfile merges the submitted fields into the caller's profile.
// The body may be multipart form data (with an optional photo file) or JSON.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var upd models.ProfileUpdate

	if form, err := c.MultipartForm(); err == nil && form != nil {
		upd = profileUpdateFromForm(form.Value)

		if file, err := c.FormFile("photo"); err == nil && file != nil {
			if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Only image files are allowed",
				})
			}
			if file.Size > maxPhotoSize {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Photo exceeds the 5MB size limit",
				})
			}

			filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename))
			if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
				log.Printf("Error saving uploaded photo: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal server error",
				})
			}
			photo := "/uploads/" + filename
			upd.Photo = &photo
		}
	} else {
		var body updateProfileJSON
		if err := c.BodyParser(&body); err != nil {
			log.Printf("Error parsing profile update body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
		upd = models.ProfileUpdate{
			Name:          body.Name,
			Location:      body.Location,
			SkillsOffered: body.SkillsOffered,
			SkillsWanted:  body.SkillsWanted,
			Availability:  body.Availability,
			IsPublic:      body.IsPublic,
		}
	}

	user, err := h.userService.UpdateProfile(currentUserID(c), upd)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// HandleSearchUsers filters the public directory by skill and location terms.
func (h *UserHandler) HandleSearchUsers(c *fiber.Ctx) error {
	users, err := h.userService.Search(currentUserID(c), c.Query("skill"), c.Query("location"))
	if err != nil {
		log.Printf("Error searching users: %v", err)
		return respondError(c, err)
	}
	return c.JSON(users)
}

// profileUpdateFromForm builds a partial edit from multipart form values.
// Slice fields accept repeated keys or a single comma-separated value.
func profileUpdateFromForm(values map[string][]string) models.ProfileUpdate {
	var upd models.ProfileUpdate

	if v, ok := values["name"]; ok && len(v) > 0 {
		upd.Name = &v[0]
	}
	if v, ok := values["location"]; ok && len(v) > 0 {
		upd.Location = &v[0]
	}
	if v, ok := values["isPublic"]; ok && len(v) > 0 {
		if b, err := strconv.ParseBool(v[0]); err == nil {
			upd.IsPublic = &b
		}
	}
	if v, ok := values["skillsOffered"]; ok {
		list := splitFormList(v)
		upd.SkillsOffered = &list
	}
	if v, ok := values["skillsWanted"]; ok {
		list := splitFormList(v)
		upd.SkillsWanted = &list
	}
	if v, ok := values["availability"]; ok {
		list := splitFormList(v)
		upd.Availability = &list
	}
	return upd
}

func splitFormList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
