package repository

import (
	"context"

	"electric/internal/domain/entity"
)

// UserRepository defines the operations for account persistence. Accounts
// are keyed by email.
type UserRepository interface {
	// FindByEmail retrieves the single account for the email.
	// Returns ErrNotFound when none exists.
	FindByEmail(ctx context.Context, email string) (entity.Document, error)

	// List retrieves every account document.
	List(ctx context.Context) ([]entity.Document, error)

	// UpsertByEmail shallow-merges fields into the account for the email,
	// creating it if absent. Used both for the login/register upsert and
	// for role updates.
	UpsertByEmail(ctx context.Context, email string, fields entity.Document) (*UpdateResult, error)
}
