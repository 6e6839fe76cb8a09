package usecase

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
)

// ProfileUsecase covers the profile-information routes.
type ProfileUsecase interface {
	// GetProfile returns the profile for email, or nil when none exists.
	GetProfile(ctx context.Context, email string) (entity.Document, error)

	// UpsertProfile shallow-merges fields into the profile for email,
	// creating it if absent.
	UpsertProfile(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error)
}
