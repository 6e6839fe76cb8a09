package handler

import (
	"log/slog"
	"net/http"

	"electric/internal/delivery/http/response"
	"electric/internal/domain/entity"
	"electric/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order routes.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders handles GET /order. With an email query the result is
// filtered to that owner; without one every order is returned.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	docs, err := h.uc.ListOrders(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, docs)
}

// ListMyOrders handles GET /myOrder, the owner-scoped listing.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "email query parameter is required")
	}

	docs, err := h.uc.ListOrders(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, docs)
}

// GetOrder handles GET /order/:id. A deleted or unknown order answers with
// a null body.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	doc, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, doc)
}

// CreateOrder handles POST /order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var doc entity.Document
	if err := c.Bind(&doc); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order body")
	}

	result, err := h.uc.CreateOrder(c.Request().Context(), doc)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}

// UpdateOrder handles PUT /order/:id, a shallow field merge.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var fields entity.Document
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order body")
	}

	result, err := h.uc.MergeOrder(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}

// DeleteOrder handles DELETE /order/:id.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	result, err := h.uc.DeleteOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}
