package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCheckoutCompleted EventType = "checkout_completed"
	EventClassCreated      EventType = "class_created"
	EventClassDeleted      EventType = "class_deleted"
	EventUserPromoted      EventType = "user_promoted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CheckoutCompletedPayload payload.
type CheckoutCompletedPayload struct {
	PaymentID    string   `json:"payment_id"`
	PayerEmail   string   `json:"payer_email"`
	Amount       float64  `json:"amount"`
	CartItemIDs  []string `json:"cart_item_ids"`
	RemovedCount int64    `json:"removed_count"`
	Partial      bool     `json:"partial"`
}

// ClassCreatedPayload payload.
type ClassCreatedPayload struct {
	ClassID string `json:"class_id"`
	Name    string `json:"name"`
}

// ClassDeletedPayload payload.
type ClassDeletedPayload struct {
	ClassID string `json:"class_id"`
}

// UserPromotedPayload payload.
type UserPromotedPayload struct {
	UserID string `json:"user_id"`
}
