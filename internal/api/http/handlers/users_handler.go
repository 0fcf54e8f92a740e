package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-marketplace/internal/api/dto"
	"github.com/spec-kit/class-marketplace/internal/auth"
	"github.com/spec-kit/class-marketplace/internal/service"
)

// UsersHandler exposes the user directory routes.
type UsersHandler struct {
	accounts *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// List handles GET /users (admin-only).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.accounts.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// Create handles POST /users. Duplicate emails are not an error; the
// identity frontend replays the same account on every login.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, created, err := h.accounts.EnsureUser(c.Context(), req.Name, req.Email)
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(fiber.Map{"message": "user already exists"})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// CheckAdmin handles GET /users/admin/:email. Callers may only ask
// about themselves; asking about anyone else simply reports false.
func (h *UsersHandler) CheckAdmin(c *fiber.Ctx) error {
	email := c.Params("email")

	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Email != email {
		return c.JSON(fiber.Map{"admin": false})
	}

	isAdmin, err := h.accounts.IsAdmin(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": isAdmin})
}

// Promote handles PATCH /users/admin/:id (admin-only).
func (h *UsersHandler) Promote(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(http.StatusBadRequest, "user id required")
	}

	if err := h.accounts.PromoteToAdmin(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "user promoted"})
}
