package impl

import (
	"context"
	"log/slog"
	"math"

	domainerrors "electric/internal/domain/errors"
	"electric/internal/domain/service"
	"electric/internal/usecase"
)

// currency is fixed by the storefront.
const currency = "usd"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(gateway service.PaymentGateway, logger *slog.Logger) usecase.PaymentUsecase {
	return &paymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateIntent converts the price to minor units and creates a card-only
// payment intent.
func (srv *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
	}

	amount := int64(math.Round(price * 100))

	clientSecret, err := srv.gateway.CreateIntent(ctx, amount, currency)
	if err != nil {
		return "", classify(err, "failed to create payment intent")
	}

	srv.logger.Info("Payment intent created", slog.Int64("amount", amount))

	return clientSecret, nil
}
