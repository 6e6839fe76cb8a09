package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockService "electric/internal/mocks/service"
	mockUsecase "electric/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func performRequest(header string, handlers ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	h := okHandler
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}
	e.GET("/guarded", h)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)
	accounts := new(mockUsecase.MockAccountUsecase)
	m := NewAuthMiddleware(tokenSvc, accounts)

	rec := performRequest("", m.Authenticate)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthenticate_RejectsNonBearerScheme(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)
	accounts := new(mockUsecase.MockAccountUsecase)
	m := NewAuthMiddleware(tokenSvc, accounts)

	rec := performRequest("Basic abc123", m.Authenticate)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenSvc.AssertNotCalled(t, "Validate")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)
	accounts := new(mockUsecase.MockAccountUsecase)
	tokenSvc.On("Validate", "bad-token").Return(nil, assert.AnError)
	m := NewAuthMiddleware(tokenSvc, accounts)

	rec := performRequest("Bearer bad-token", m.Authenticate)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticate_PassesWithEmailClaim(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)
	accounts := new(mockUsecase.MockAccountUsecase)
	tokenSvc.On("Validate", "good-token").
		Return(jwt.MapClaims{"email": "a@x.com"}, nil)
	m := NewAuthMiddleware(tokenSvc, accounts)

	rec := performRequest("Bearer good-token", m.Authenticate)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)
	accounts := new(mockUsecase.MockAccountUsecase)
	tokenSvc.On("Validate", "good-token").
		Return(jwt.MapClaims{"email": "user@x.com"}, nil)
	accounts.On("IsAdmin", mock.Anything, "user@x.com").Return(false, nil)
	m := NewAuthMiddleware(tokenSvc, accounts)

	rec := performRequest("Bearer good-token", m.Authenticate, m.RequireAdmin)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	tokenSvc := new(mockService.MockTokenService)
	accounts := new(mockUsecase.MockAccountUsecase)
	tokenSvc.On("Validate", "good-token").
		Return(jwt.MapClaims{"email": "admin@x.com"}, nil)
	accounts.On("IsAdmin", mock.Anything, "admin@x.com").Return(true, nil)
	m := NewAuthMiddleware(tokenSvc, accounts)

	rec := performRequest("Bearer good-token", m.Authenticate, m.RequireAdmin)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
