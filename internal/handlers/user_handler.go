package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/services"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/validation"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validation.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, validate *validation.Validator) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var payload models.UserPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Check(payload); err != nil {
		return respondError(c, err)
	}

	user, err := h.service.CreateUser(payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser fully replaces an existing user. Every mutable field
// must be supplied; there are no partial updates.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var payload models.UserPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Check(payload); err != nil {
		return respondError(c, err)
	}

	user, err := h.service.UpdateUser(id, payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user by ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteUser(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
