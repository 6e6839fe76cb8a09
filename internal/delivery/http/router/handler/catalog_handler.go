// Package handler contains the HTTP handlers for the storefront API.
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

// CatalogHandler holds dependencies for the product routes.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles GET /product.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	docs, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, docs)
}

// GetProduct handles GET /product/:id. A miss answers with a null body,
// not an error.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	doc, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, doc)
}

// CreateProduct handles POST /product.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var doc entity.Document
	if err := c.Bind(&doc); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product body")
	}

	result, err := h.uc.CreateProduct(c.Request().Context(), doc)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}

// DeleteProduct handles DELETE /product/:id.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	result, err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}
