package payments

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// IntentCreator creates a charge intent with the external payment processor
// and returns the client secret the frontend needs to complete the charge.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error)
}

// StripeIntentCreator creates card payment intents through Stripe
type StripeIntentCreator struct{}

// NewStripeIntentCreator sets the global Stripe key and returns a creator
func NewStripeIntentCreator(secretKey string) *StripeIntentCreator {
	stripe.Key = secretKey
	return &StripeIntentCreator{}
}

func (s *StripeIntentCreator) CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a decimal price to the processor's integer minor-unit
// representation (cents for USD).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
