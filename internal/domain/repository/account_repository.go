// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account exists for a handle.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateHandle is returned when an insert loses the uniqueness race
	// on the handle column. It is derived from the store's constraint
	// violation, never from a pre-check, so concurrent creates stay correct.
	ErrDuplicateHandle = errors.New("handle already taken")
)

// AccountRepository is the credential store. FindByHandle returns the full
// record including the password hash and exists for the verifier alone;
// everything that leaves the application boundary goes through List or the
// entity's Public projection.
type AccountRepository interface {
	// Create persists a new account. The handle uniqueness constraint is the
	// sole arbiter for duplicates.
	Create(ctx context.Context, account *entity.Account) error

	// FindByHandle retrieves the full stored account record for a handle.
	FindByHandle(ctx context.Context, handle string) (*entity.Account, error)

	// List returns all accounts. Order is not significant.
	List(ctx context.Context) ([]*entity.Account, error)
}
