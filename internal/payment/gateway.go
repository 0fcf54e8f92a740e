package payment

import (
	"context"
	"errors"

	stripe "github.com/stripe/stripe-go/v79"
	stripeclient "github.com/stripe/stripe-go/v79/client"

	"github.com/spec-kit/class-marketplace/internal/config"
)

// ErrGatewayNotConfigured indicates the payment secret key is missing.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// Gateway creates charges with the external payment provider. The
// charge itself is opaque to the rest of the system: checkout only
// runs after the client has confirmed the returned intent.
type Gateway interface {
	CreateCharge(ctx context.Context, amount float64, currency string) (clientSecret string, err error)
}

type stripeGateway struct {
	client   *stripeclient.API
	currency string
}

// NewStripeGateway builds a Stripe-backed gateway.
func NewStripeGateway(cfg config.PaymentConfig) (Gateway, error) {
	if cfg.StripeSecretKey == "" {
		return nil, ErrGatewayNotConfigured
	}
	sc := &stripeclient.API{}
	sc.Init(cfg.StripeSecretKey, nil)
	return &stripeGateway{client: sc, currency: cfg.Currency}, nil
}

// CreateCharge opens a payment intent for the amount, in cents, and
// returns its client secret. The currency argument overrides the
// configured default when non-empty.
func (g *stripeGateway) CreateCharge(ctx context.Context, amount float64, currency string) (string, error) {
	if currency == "" {
		currency = g.currency
	}
	cents := int64(amount * 100)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(cents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
