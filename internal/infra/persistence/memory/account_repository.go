// Package memory provides in-memory implementations of the repository
// contracts. They back the usecase tests and are interchangeable with the
// postgres implementations behind the same interfaces.
package memory

import (
	"context"
	"sync"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"

	"github.com/google/uuid"
)

// AccountRepository is a thread-safe in-memory credential store.
type AccountRepository struct {
	mu       sync.Mutex
	byHandle map[string]*entity.Account
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byHandle: make(map[string]*entity.Account)}
}

// Create stores a new account. The handle check and insert happen under one
// lock, mirroring the atomicity the database's unique constraint provides.
func (repo *AccountRepository) Create(_ context.Context, account *entity.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byHandle[account.Handle]; exists {
		return repository.ErrDuplicateHandle
	}

	account.ID = uuid.New()
	stored := *account
	repo.byHandle[account.Handle] = &stored

	return nil
}

// FindByHandle returns the full stored record for a handle.
func (repo *AccountRepository) FindByHandle(_ context.Context, handle string) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, exists := repo.byHandle[handle]
	if !exists {
		return nil, repository.ErrAccountNotFound
	}

	account := *stored

	return &account, nil
}

// List returns all stored accounts in no particular order.
func (repo *AccountRepository) List(_ context.Context) ([]*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	accounts := make([]*entity.Account, 0, len(repo.byHandle))
	for _, stored := range repo.byHandle {
		account := *stored
		accounts = append(accounts, &account)
	}

	return accounts, nil
}

// Count reports the number of stored accounts. Test helper.
func (repo *AccountRepository) Count() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return len(repo.byHandle)
}
