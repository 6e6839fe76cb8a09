package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
	mockUsecase "electric/internal/mocks/usecase"
	"electric/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountEcho(t *testing.T, uc *mockUsecase.MockAccountUsecase) *echo.Echo {
	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAccountHandler(uc, logger)

	e.GET("/users", h.CheckAdmin)
	e.PUT("/users", h.UpsertAccount)
	e.GET("/user", h.ListAccounts)
	e.PUT("/user/:email", h.SetRole)

	return e
}

func TestAccountHandler_CheckAdmin_True(t *testing.T) {
	uc := new(mockUsecase.MockAccountUsecase)
	uc.On("IsAdmin", mock.Anything, "admin@x.com").Return(true, nil)

	e := newAccountEcho(t, uc)
	req := httptest.NewRequest(http.MethodGet, "/users?email=admin@x.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":true}`, rec.Body.String())
}

func TestAccountHandler_CheckAdmin_FalseForUnknownEmail(t *testing.T) {
	uc := new(mockUsecase.MockAccountUsecase)
	uc.On("IsAdmin", mock.Anything, "ghost@x.com").Return(false, nil)

	e := newAccountEcho(t, uc)
	req := httptest.NewRequest(http.MethodGet, "/users?email=ghost@x.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String())
}

func TestAccountHandler_CheckAdmin_RequiresEmail(t *testing.T) {
	uc := new(mockUsecase.MockAccountUsecase)

	e := newAccountEcho(t, uc)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "IsAdmin")
}

func TestAccountHandler_UpsertAccount_ReturnsResultAndToken(t *testing.T) {
	uc := new(mockUsecase.MockAccountUsecase)
	uc.On("UpsertAccount", mock.Anything, "a@x.com", entity.Document{"email": "a@x.com"}).
		Return(&usecase.UpsertAccountOutput{
			Result:      &repository.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: "abc"},
			AssessToken: "signed-token",
		}, nil)

	e := newAccountEcho(t, uc)
	req := httptest.NewRequest(http.MethodPut, "/users?email=a@x.com", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"assessToken":"signed-token"`)
	assert.Contains(t, body, `"upsertedId":"abc"`)
}

func TestAccountHandler_SetRole(t *testing.T) {
	uc := new(mockUsecase.MockAccountUsecase)
	uc.On("SetRole", mock.Anything, "a@x.com", entity.Document{"roll": "admin"}).
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	e := newAccountEcho(t, uc)
	req := httptest.NewRequest(http.MethodPut, "/user/a@x.com", strings.NewReader(`{"roll":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"modifiedCount":1`)
	uc.AssertExpectations(t)
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	uc := new(mockUsecase.MockAccountUsecase)
	uc.On("ListAccounts", mock.Anything).
		Return([]entity.Document{{"email": "a@x.com", "roll": "admin"}}, nil)

	e := newAccountEcho(t, uc)
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"email":"a@x.com","roll":"admin"}]`, rec.Body.String())
}
