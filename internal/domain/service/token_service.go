// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import "github.com/golang-jwt/jwt/v5"

// TokenService mints and validates the signed bearer credential issued on
// account upsert. Claims are caller-supplied and embedded verbatim, plus
// standard issued-at/expiry claims.
type TokenService interface {
	// Generate signs a token embedding the given claims.
	Generate(claims map[string]any) (string, error)

	// Validate parses and verifies a token string, returning its claims.
	Validate(tokenString string) (jwt.MapClaims, error)
}
