package impl

import (
	"context"
	"log/slog"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
	"electric/internal/errors"
	"electric/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profiles repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profiles: profiles,
		logger:   logger,
	}
}

// GetProfile returns the profile for email, or nil when none exists.
func (srv *profileService) GetProfile(ctx context.Context, email string) (entity.Document, error) {
	doc, err := srv.profiles.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}

		return nil, classify(err, "failed to find profile")
	}

	return doc, nil
}

// UpsertProfile shallow-merges fields into the profile for email. The
// second upsert for the same email always lands on the same document; the
// unique email index keeps concurrent first upserts from duplicating it.
func (srv *profileService) UpsertProfile(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error) {
	result, err := srv.profiles.UpsertByEmail(ctx, email, fields)
	if err != nil {
		return nil, classify(err, "failed to upsert profile")
	}

	srv.logger.Debug("Profile upserted", slog.String("email", email))

	return result, nil
}
