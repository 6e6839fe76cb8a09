package service

import "context"

// PaymentGateway creates processor-side payment intents. Amounts are in
// minor currency units (cents).
type PaymentGateway interface {
	// CreateIntent creates a card-only payment intent and returns the
	// processor-issued client secret.
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
