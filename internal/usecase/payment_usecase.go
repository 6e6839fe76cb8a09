package usecase

import "context"

// PaymentUsecase covers payment-intent creation.
type PaymentUsecase interface {
	// CreateIntent creates a processor-side payment intent for the given
	// price in decimal currency units and returns the client secret.
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}
