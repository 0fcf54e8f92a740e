package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-marketplace/internal/api/dto"
	"github.com/spec-kit/class-marketplace/internal/auth"
	"github.com/spec-kit/class-marketplace/internal/payment"
	"github.com/spec-kit/class-marketplace/internal/service"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

// PaymentsHandler exposes the payment-intent and checkout routes.
type PaymentsHandler struct {
	gateway  payment.Gateway
	checkout *service.CheckoutService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(gateway payment.Gateway, checkout *service.CheckoutService) *PaymentsHandler {
	return &PaymentsHandler{gateway: gateway, checkout: checkout}
}

// CreateIntent handles POST /payments/intent (authenticated). Opens a
// charge with the gateway and returns the client secret the frontend
// confirms the card against.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Price <= 0 {
		return fiber.NewError(http.StatusBadRequest, "price must be positive")
	}

	clientSecret, err := h.gateway.CreateCharge(c.Context(), req.Price, "")
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PaymentIntentResponse{ClientSecret: clientSecret}})
}

// Checkout handles POST /payments (authenticated). The charge has
// already been confirmed against the gateway; this records it and
// retires the paid-for cart items.
func (h *PaymentsHandler) Checkout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.checkout.Reconcile(c.Context(), principal.Email, req.Amount, req.CartItemIDs)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.CheckoutResponse{
			PaymentID:    result.PaymentID,
			RemovedCount: result.RemovedCount,
			Partial:      result.Partial,
		},
	})
}
