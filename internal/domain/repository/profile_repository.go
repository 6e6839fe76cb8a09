package repository

import (
	"context"

	"electric/internal/domain/entity"
)

// ProfileRepository defines the operations for profile-information
// persistence. Profiles are keyed by email, not by the generated identity.
type ProfileRepository interface {
	// FindByEmail retrieves the single profile for the email.
	// Returns ErrNotFound when none exists.
	FindByEmail(ctx context.Context, email string) (entity.Document, error)

	// UpsertByEmail shallow-merges fields into the profile for the email,
	// creating it if absent. Email uniqueness is enforced by a unique
	// index at the storage layer.
	UpsertByEmail(ctx context.Context, email string, fields entity.Document) (*UpdateResult, error)
}
