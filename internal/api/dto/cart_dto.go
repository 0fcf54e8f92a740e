package dto

import (
	"time"

	"github.com/spec-kit/class-marketplace/internal/domain"
)

// CartItemCreateRequest payload for adding a class to the cart.
type CartItemCreateRequest struct {
	OwnerEmail string  `json:"owner_email"`
	ClassID    string  `json:"class_id"`
	ClassName  string  `json:"class_name"`
	Price      float64 `json:"price"`
}

// CartItemResponse is the outward view of a cart item.
type CartItemResponse struct {
	ID         string    `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	ClassID    string    `json:"class_id"`
	ClassName  string    `json:"class_name"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCartItemResponses maps a slice of domain cart items.
func NewCartItemResponses(items []*domain.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemResponse{
			ID:         item.ID,
			OwnerEmail: item.OwnerEmail,
			ClassID:    item.ClassID,
			ClassName:  item.ClassName,
			Price:      item.Price,
			CreatedAt:  item.CreatedAt,
		})
	}
	return out
}
