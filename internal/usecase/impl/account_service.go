package impl

import (
	"context"
	"log/slog"

	"electric/internal/domain/entity"
	domainerrors "electric/internal/domain/errors"
	"electric/internal/domain/repository"
	"electric/internal/domain/service"
	"electric/internal/errors"
	"electric/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	users    repository.UserRepository
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	users repository.UserRepository,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		users:    users,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// IsAdmin reports whether the stored account for email carries the admin
// role flag. A missing account is not an administrator.
func (srv *accountService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := srv.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}

		return false, classify(err, "failed to find user")
	}

	return user.IsAdmin(), nil
}

// ListAccounts returns every account document.
func (srv *accountService) ListAccounts(ctx context.Context) ([]entity.Document, error) {
	docs, err := srv.users.List(ctx)
	if err != nil {
		return nil, classify(err, "failed to list users")
	}

	return docs, nil
}

// UpsertAccount merges the caller-supplied claims into the account for
// email and mints the 24-hour access token embedding those claims.
func (srv *accountService) UpsertAccount(ctx context.Context, email string, claims entity.Document) (*usecase.UpsertAccountOutput, error) {
	result, err := srv.users.UpsertByEmail(ctx, email, claims)
	if err != nil {
		return nil, classify(err, "failed to upsert user")
	}

	token, err := srv.tokenSvc.Generate(claims)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.logger.Info("Account upserted", slog.String("email", email))

	return &usecase.UpsertAccountOutput{
		Result:      result,
		AssessToken: token,
	}, nil
}

// SetRole merges role fields into the account for email.
func (srv *accountService) SetRole(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error) {
	result, err := srv.users.UpsertByEmail(ctx, email, fields)
	if err != nil {
		return nil, classify(err, "failed to update user role")
	}

	srv.logger.Info("Account role updated",
		slog.String("email", email),
		slog.String("roll", fields.StringField(entity.FieldRole)),
	)

	return result, nil
}
