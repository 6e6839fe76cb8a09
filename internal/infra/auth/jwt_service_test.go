package auth

import (
	"testing"
	"time"

	"electric/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t, "test-secret")

	token, err := svc.Generate(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
}

func TestJWTService_TokenExpiresInOneDay(t *testing.T) {
	svc := newTestService(t, "test-secret")

	token, err := svc.Generate(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)

	assert.InDelta(t, 24*time.Hour.Seconds(), exp-iat, 1)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestService(t, "test-secret")
	other := newTestService(t, "other-secret")

	token, err := svc.Generate(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t, "test-secret")

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}
