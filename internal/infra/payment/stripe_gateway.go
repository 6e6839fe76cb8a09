// Package payment contains the Stripe implementation of the payment
// gateway.
package payment

import (
	"context"
	"log/slog"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"electric/config"
	domainerrors "electric/internal/domain/errors"
	"electric/internal/domain/service"
)

// stripeGateway implements service.PaymentGateway against the Stripe API.
type stripeGateway struct {
	api    *client.API
	logger *slog.Logger
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripeGateway{
		api:    api,
		logger: logger,
	}
}

// CreateIntent creates a card-only payment intent for the given amount in
// minor units and returns the client secret. No idempotency key is
// attached; retried calls create fresh intents.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Error("Payment intent creation failed",
			slog.Int64("amount", amount),
			slog.String("currency", currency),
			slog.Any("error", err),
		)

		return "", domainerrors.NewPaymentUpstreamError(err, "failed to create payment intent")
	}

	return intent.ClientSecret, nil
}
