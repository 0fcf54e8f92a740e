package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-marketplace/internal/api/dto"
	"github.com/spec-kit/class-marketplace/internal/service"
)

// InstructorsHandler exposes the instructor directory.
type InstructorsHandler struct {
	catalog *service.CatalogService
}

// NewInstructorsHandler constructs handler.
func NewInstructorsHandler(catalog *service.CatalogService) *InstructorsHandler {
	return &InstructorsHandler{catalog: catalog}
}

// List handles GET /instructors (public).
func (h *InstructorsHandler) List(c *fiber.Ctx) error {
	instructors, err := h.catalog.ListInstructors(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInstructorResponses(instructors)})
}
