package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "electric/internal/domain/errors"
	mockService "electric/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPaymentService(t *testing.T) (*paymentService, *mockService.MockPaymentGateway) {
	gateway := new(mockService.MockPaymentGateway)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPaymentService(gateway, logger).(*paymentService), gateway
}

func TestPaymentService_CreateIntent_ConvertsToMinorUnits(t *testing.T) {
	service, gateway := createTestPaymentService(t)
	ctx := context.Background()

	gateway.On("CreateIntent", ctx, int64(1999), "usd").Return("pi_secret", nil)

	clientSecret, err := service.CreateIntent(ctx, 19.99)

	require.NoError(t, err)
	assert.Equal(t, "pi_secret", clientSecret)
	gateway.AssertExpectations(t)
}

func TestPaymentService_CreateIntent_RoundsHalfCents(t *testing.T) {
	service, gateway := createTestPaymentService(t)
	ctx := context.Background()

	// 10.005 * 100 is 1000.4999... in binary; rounding keeps it stable.
	gateway.On("CreateIntent", ctx, int64(1000), "usd").Return("pi_secret", nil)

	_, err := service.CreateIntent(ctx, 10.005)

	require.NoError(t, err)
}

func TestPaymentService_CreateIntent_RejectsNonPositivePrice(t *testing.T) {
	service, gateway := createTestPaymentService(t)
	ctx := context.Background()

	_, err := service.CreateIntent(ctx, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	gateway.AssertNotCalled(t, "CreateIntent")
}

func TestPaymentService_CreateIntent_UpstreamRejection(t *testing.T) {
	service, gateway := createTestPaymentService(t)
	ctx := context.Background()

	upstream := domainerrors.NewPaymentUpstreamError(assert.AnError, "card declined")
	gateway.On("CreateIntent", ctx, int64(500), "usd").Return("", upstream)

	_, err := service.CreateIntent(ctx, 5)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYMENT_UPSTREAM_FAILED", appErr.ErrorCode())
}
