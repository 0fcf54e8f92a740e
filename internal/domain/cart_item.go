package domain

import "time"

// CartItem is a class a user has selected but not yet paid for.
// Checkout only ever addresses cart items by id; the snapshot fields
// exist so the cart renders without joining the catalog.
type CartItem struct {
	ID         string
	OwnerEmail string
	ClassID    string
	ClassName  string
	Price      float64
	CreatedAt  time.Time
}
