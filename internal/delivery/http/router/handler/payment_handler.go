package handler

import (
	"log/slog"
	"net/http"

	"electric/internal/delivery/http/response"
	"electric/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreatePaymentIntentInput is the POST /create-payment-intent body.
type CreatePaymentIntentInput struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreatePaymentIntentResponse carries the processor-issued client secret.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentHandler holds dependencies for the payment route.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var input CreatePaymentIntentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment body")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "price must be a number greater than zero")
	}

	clientSecret, err := h.uc.CreateIntent(c.Request().Context(), input.Price)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, CreatePaymentIntentResponse{ClientSecret: clientSecret})
}
