package service

import (
	"context"

	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/repository"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

// CartService manages a user's selected-but-unpaid classes.
type CartService struct {
	carts repository.CartRepository
}

// NewCartService constructs the service.
func NewCartService(carts repository.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// ViewCart lists the cart for the requested email. Carts are
// owner-only: the requested email must match the verified principal.
// An empty requested email yields an empty cart rather than an error.
func (s *CartService) ViewCart(ctx context.Context, requestedEmail, principalEmail string) ([]*domain.CartItem, error) {
	if requestedEmail == "" {
		return []*domain.CartItem{}, nil
	}
	if requestedEmail != principalEmail {
		return nil, apperrors.NewForbidden("forbidden")
	}
	items, err := s.carts.FindByOwner(ctx, requestedEmail)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.CartItem{}
	}
	return items, nil
}

// AddItem inserts a cart item.
func (s *CartService) AddItem(ctx context.Context, item *domain.CartItem) error {
	if item.OwnerEmail == "" || item.ClassID == "" {
		return apperrors.NewValidationError("owner email and class id required", nil)
	}
	return s.carts.Create(ctx, item)
}

// RemoveItem deletes a single cart item by id.
func (s *CartService) RemoveItem(ctx context.Context, id string) error {
	return s.carts.DeleteByID(ctx, id)
}
