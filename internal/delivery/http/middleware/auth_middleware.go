package middleware

import (
	"strings"

	"electric/internal/delivery/http/response"
	"electric/internal/domain/entity"
	"electric/internal/domain/service"
	"electric/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// contextKeyEmail is where Authenticate stores the verified email claim.
const contextKeyEmail = "email"

// AuthMiddleware provides middleware for bearer-token authentication and
// the admin gate on account-administration routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	accounts usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accounts usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accounts: accounts}
}

// Authenticate validates the bearer token and stores its email claim on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		email, ok := claims[entity.FieldEmail].(string)
		if !ok || email == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Email claim missing from token")
		}

		c.Set(contextKeyEmail, email)

		return next(c)
	}
}

// RequireAdmin checks the stored account behind the verified email claim
// for the admin role flag. Must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, ok := c.Get(contextKeyEmail).(string)
		if !ok || email == "" {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
		}

		admin, err := m.accounts.IsAdmin(c.Request().Context(), email)
		if err != nil {
			return errors.WithStack(err)
		}
		if !admin {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require admin role")
		}

		return next(c)
	}
}
