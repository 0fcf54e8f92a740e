package dto

// PaymentIntentRequest asks the gateway to open a charge.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse returns the gateway client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// CheckoutRequest records a confirmed charge and the cart items it
// paid for.
type CheckoutRequest struct {
	Amount      float64  `json:"amount"`
	CartItemIDs []string `json:"cart_item_ids"`
}

// CheckoutResponse reports the reconciliation outcome. Partial means
// the payment is committed but some targeted items were already gone.
type CheckoutResponse struct {
	PaymentID    string `json:"payment_id"`
	RemovedCount int64  `json:"removed_count"`
	Partial      bool   `json:"partial"`
}

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	Users     int64   `json:"users"`
	CartItems int64   `json:"cart_items"`
	Payments  int64   `json:"payments"`
	Revenue   float64 `json:"revenue"`
}
