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

// AdminCheckResponse is the GET /users answer shape.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

// AccountHandler holds dependencies for the user/account routes.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// CheckAdmin handles GET /users, answering whether the stored account for
// the email carries the admin role flag.
func (h *AccountHandler) CheckAdmin(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "email query parameter is required")
	}

	admin, err := h.uc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, AdminCheckResponse{Admin: admin})
}

// ListAccounts handles GET /user.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	docs, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, docs)
}

// UpsertAccount handles PUT /users, the login/register upsert. The
// response bundles the storage acknowledgement with the minted token.
func (h *AccountHandler) UpsertAccount(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "email query parameter is required")
	}

	var claims entity.Document
	if err := c.Bind(&claims); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user body")
	}

	output, err := h.uc.UpsertAccount(c.Request().Context(), email, claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// SetRole handles PUT /user/:email, the admin role update.
func (h *AccountHandler) SetRole(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "email path parameter is required")
	}

	var fields entity.Document
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role body")
	}

	result, err := h.uc.SetRole(c.Request().Context(), email, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}
