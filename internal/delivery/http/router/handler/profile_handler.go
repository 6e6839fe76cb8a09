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

// ProfileHandler holds dependencies for the profile-information routes.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile handles GET /profileinformation. An unknown email answers
// with a null body.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "email query parameter is required")
	}

	doc, err := h.uc.GetProfile(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, doc)
}

// UpsertProfile handles PUT /profileinformation, an update-or-create keyed
// by email.
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "email query parameter is required")
	}

	var fields entity.Document
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile body")
	}

	result, err := h.uc.UpsertProfile(c.Request().Context(), email, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}
