// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterAccountInput defines the data required to create a staff account.
// The role is stored verbatim; see entity.Role.
type RegisterAccountInput struct {
	Handle      string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required"`
	DisplayName string `json:"name"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Handle   string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterAccountOutput returns the newly created account's public fields.
type RegisterAccountOutput struct {
	Account *entity.PublicAccount
}

// LoginOutput returns the authenticated account's public fields. There is no
// token: the login contract returns a user object, nothing more.
type LoginOutput struct {
	Account *entity.PublicAccount
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// No output ever includes the stored password hash.
type AccountUsecase interface {
	// Register creates a new staff account. Duplicate handles surface
	// domainerrors.ErrDuplicateHandle.
	Register(ctx context.Context, input *RegisterAccountInput) (*RegisterAccountOutput, error)

	// Login verifies a handle/password pair. Unknown handle and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// List returns the public fields of every account.
	List(ctx context.Context) ([]*entity.PublicAccount, error)
}
