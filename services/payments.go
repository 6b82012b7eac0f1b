package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

type PaymentIntent struct {
	Id           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// PaymentGateway creates payment intents with the external payment
// processor. Capture and card-network handling stay on the processor side.
type PaymentGateway interface {
	CreateIntent(amountCents int64, currency string, customerEmail string) (*PaymentIntent, error)
}

type StripeGateway struct{}

func NewStripeGateway(apiKey string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(amountCents int64, currency string, customerEmail string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(amountCents),
		Currency:     stripe.String(currency),
		ReceiptEmail: stripe.String(customerEmail),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		slog.Error("error creating payment intent", "customerEmail", customerEmail, "error", err)
		return nil, err
	}

	slog.Info("payment intent created", "intentId", intent.ID, "amountCents", amountCents)
	return &PaymentIntent{Id: intent.ID, ClientSecret: intent.ClientSecret}, nil
}
