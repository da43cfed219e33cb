// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface. It is the
// credential store and verifier behind the login and user endpoints.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	accountRepo repository.AccountRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

// Register creates a new staff account with a bcrypt-derived password hash.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.RegisterAccountOutput, error) {
	if input.Handle == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("handle and password are required")
	}

	srv.logger.Info("Registering account", "handle", input.Handle)

	// Hash before touching the store: the derivation is deliberately slow and
	// must not hold a database connection while it runs.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newAccount := &entity.Account{
		Handle:       input.Handle,
		PasswordHash: hashedPassword,
		Role:         entity.Role(input.Role),
		DisplayName:  input.DisplayName,
	}

	// No existence pre-check: concurrent registrations of the same handle
	// race, and the store's uniqueness constraint decides the winner.
	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		if errors.Is(err, repository.ErrDuplicateHandle) {
			return nil, domainerrors.ErrDuplicateHandle.WrapMessage("account registration failed")
		}

		srv.logger.Error("Failed to create account", "error", err, "handle", input.Handle)

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.logger.Debug("Account registered", "accountID", newAccount.ID)

	return &usecase.RegisterAccountOutput{Account: newAccount.Public()}, nil
}

// Login verifies a handle/password pair against the stored derivation.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	// Fail fast before any store access.
	if input.Handle == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("handle and password are required")
	}

	account, err := srv.accountRepo.FindByHandle(ctx, input.Handle)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Same outcome and same log line as a wrong password: nothing
			// observable may reveal whether the handle exists.
			srv.logger.Warn("Login rejected", "handle", input.Handle)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		srv.logger.Error("Account lookup failed during login", "error", err)

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login rejected", "handle", input.Handle)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.logger.Debug("Login accepted", "accountID", account.ID)

	return &usecase.LoginOutput{Account: account.Public()}, nil
}

// List returns the public projection of every account.
func (srv *accountService) List(ctx context.Context) ([]*entity.PublicAccount, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	public := make([]*entity.PublicAccount, 0, len(accounts))
	for _, account := range accounts {
		public = append(public, account.Public())
	}

	return public, nil
}
