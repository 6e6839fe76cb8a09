package usecase

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
)

// UpsertAccountOutput bundles the storage acknowledgement with the freshly
// minted access token, matching the login/register response shape.
type UpsertAccountOutput struct {
	Result      *repository.UpdateResult `json:"result"`
	AssessToken string                   `json:"assessToken"`
}

// AccountUsecase covers the user/account routes.
type AccountUsecase interface {
	// IsAdmin reports whether the stored account for email carries the
	// admin role flag. A missing account is not an administrator.
	IsAdmin(ctx context.Context, email string) (bool, error)

	// ListAccounts returns every account document.
	ListAccounts(ctx context.Context) ([]entity.Document, error)

	// UpsertAccount merges the caller-supplied claims into the account for
	// email (creating it on first login/register) and mints a 24-hour
	// access token embedding those claims.
	UpsertAccount(ctx context.Context, email string, claims entity.Document) (*UpsertAccountOutput, error)

	// SetRole merges role fields into the account for email.
	SetRole(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error)
}
