package impl

import (
	"context"
	"log/slog"

	domainerrors "nearshop/internal/domain/errors"
	"nearshop/internal/domain/repository"
	"nearshop/internal/domain/service"
	"nearshop/internal/errors"
	"nearshop/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Accounts repository.AccountRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenService
	Logger   *slog.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accounts: params.Accounts,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		logger:   params.Logger,
	}
}

// Login checks the credentials and issues an access token. An unknown email
// and a wrong password both surface ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := s.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if !s.hasher.Check(input.Password, account.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.GenerateToken(account.ID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	s.logger.Info("account logged in", slog.Int64("user_id", account.ID))

	return &usecase.LoginOutput{
		Token: token,
		User: usecase.AccountInfo{
			ID:    account.ID,
			Email: account.Email,
			Name:  account.Name,
		},
	}, nil
}
