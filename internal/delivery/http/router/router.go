// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"electric/internal/delivery/http/middleware"
	"electric/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler the router registers.
type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	ProfileHandler *handler.ProfileHandler
	AccountHandler *handler.AccountHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	profileHandler *handler.ProfileHandler
	accountHandler *handler.AccountHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		profileHandler: params.ProfileHandler,
		accountHandler: params.AccountHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness probe
	e.GET("/", handler.Root)

	// Product routes
	e.GET("/product", r.catalogHandler.ListProducts)
	e.GET("/product/:id", r.catalogHandler.GetProduct)
	e.POST("/product", r.catalogHandler.CreateProduct)
	e.DELETE("/product/:id", r.catalogHandler.DeleteProduct)

	// Order routes
	e.GET("/order", r.orderHandler.ListOrders)
	e.GET("/order/:id", r.orderHandler.GetOrder)
	e.GET("/myOrder", r.orderHandler.ListMyOrders)
	e.POST("/order", r.orderHandler.CreateOrder)
	e.PUT("/order/:id", r.orderHandler.UpdateOrder)
	e.DELETE("/order/:id", r.orderHandler.DeleteOrder)

	// Review routes
	e.GET("/review", r.reviewHandler.ListReviews)
	e.POST("/review", r.reviewHandler.CreateReview)

	// Profile information routes
	e.GET("/profileinformation", r.profileHandler.GetProfile)
	e.PUT("/profileinformation", r.profileHandler.UpsertProfile)

	// Account routes. The login/register upsert mints the access token;
	// the admin check backs the storefront's dashboard gate.
	e.GET("/users", r.accountHandler.CheckAdmin)
	e.PUT("/users", r.accountHandler.UpsertAccount)

	// Account administration requires a valid token for an admin account.
	e.GET("/user", r.accountHandler.ListAccounts,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	e.PUT("/user/:email", r.accountHandler.SetRole,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)

	// Payment routes
	e.POST("/create-payment-intent", r.paymentHandler.CreatePaymentIntent)
}
