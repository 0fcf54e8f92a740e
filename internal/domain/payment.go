package domain

import "time"

// Payment is the durable record of a completed charge and the cart
// items it paid for. Immutable once written.
type Payment struct {
	ID          string
	PayerEmail  string
	Amount      float64
	CartItemIDs []string
	CreatedAt   time.Time
}
