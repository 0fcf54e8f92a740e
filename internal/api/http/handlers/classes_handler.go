package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-marketplace/internal/api/dto"
	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/service"
)

// ClassesHandler exposes the class catalog routes.
type ClassesHandler struct {
	catalog *service.CatalogService
}

// NewClassesHandler constructs handler.
func NewClassesHandler(catalog *service.CatalogService) *ClassesHandler {
	return &ClassesHandler{catalog: catalog}
}

// List handles GET /classes (public).
func (h *ClassesHandler) List(c *fiber.Ctx) error {
	classes, err := h.catalog.ListClasses(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponses(classes)})
}

// Create handles POST /classes (admin-only).
func (h *ClassesHandler) Create(c *fiber.Ctx) error {
	var req dto.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	class := &domain.Class{
		Name:             req.Name,
		Image:            req.Image,
		InstructorName:   req.InstructorName,
		InstructorEmail:  req.InstructorEmail,
		AvailableSeats:   req.AvailableSeats,
		EnrolledStudents: req.EnrolledStudents,
		Price:            req.Price,
	}
	if err := h.catalog.CreateClass(c.Context(), class); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewClassResponse(class)})
}

// Delete handles DELETE /classes/:id (admin-only).
func (h *ClassesHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(http.StatusBadRequest, "class id required")
	}

	if err := h.catalog.DeleteClass(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "class deleted"})
}
