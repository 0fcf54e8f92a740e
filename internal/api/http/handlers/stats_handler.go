package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-marketplace/internal/api/dto"
	"github.com/spec-kit/class-marketplace/internal/service"
)

// StatsHandler exposes the admin dashboard summary.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview handles GET /admin/stats (admin-only).
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.stats.Overview(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.StatsResponse{
			Users:     overview.Users,
			CartItems: overview.CartItems,
			Payments:  overview.Payments,
			Revenue:   overview.Revenue,
		},
	})
}
