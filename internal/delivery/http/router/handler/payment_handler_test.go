package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "electric/internal/domain/errors"
	mockUsecase "electric/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentEcho(t *testing.T, uc *mockUsecase.MockPaymentUsecase) *echo.Echo {
	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewPaymentHandler(uc, logger)

	e.POST("/create-payment-intent", h.CreatePaymentIntent)

	return e
}

func TestPaymentHandler_CreatePaymentIntent(t *testing.T) {
	uc := new(mockUsecase.MockPaymentUsecase)
	uc.On("CreateIntent", mock.Anything, 19.99).Return("pi_secret", nil)

	e := newPaymentEcho(t, uc)
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":19.99}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_secret"}`, rec.Body.String())
}

func TestPaymentHandler_CreatePaymentIntent_RejectsMissingPrice(t *testing.T) {
	uc := new(mockUsecase.MockPaymentUsecase)

	e := newPaymentEcho(t, uc)
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "CreateIntent")
}

func TestPaymentHandler_CreatePaymentIntent_UpstreamFailure(t *testing.T) {
	uc := new(mockUsecase.MockPaymentUsecase)
	uc.On("CreateIntent", mock.Anything, 5.0).
		Return("", domainerrors.NewPaymentUpstreamError(assert.AnError, "amount rejected"))

	e := newPaymentEcho(t, uc)
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYMENT_UPSTREAM_FAILED")
}
