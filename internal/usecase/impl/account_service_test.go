package impl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/infra/persistence/memory"
	"clinic/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service usecase.AccountUsecase
	repo    *memory.AccountRepository
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()
	repo := memory.NewAccountRepository()
	service := NewAccountService(repo, newTestHasher(), newDiscardLogger())

	return accountServiceFixtures{service: service, repo: repo}
}

func registerInput() *usecase.RegisterAccountInput {
	return &usecase.RegisterAccountInput{
		Handle:      "drsmith",
		Password:    "Sw0rdfish!",
		Role:        "Doctor",
		DisplayName: "Dr. Smith",
	}
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, registerInput())
	require.NoError(t, err)
	require.NotNil(t, registered.Account)
	assert.NotEqual(t, "", registered.Account.ID.String())
	assert.Equal(t, "drsmith", registered.Account.Handle)
	assert.Equal(t, "Doctor", registered.Account.Role.String())
	assert.Equal(t, "Dr. Smith", registered.Account.DisplayName)

	loggedIn, err := fx.service.Login(ctx, &usecase.LoginInput{Handle: "drsmith", Password: "Sw0rdfish!"})
	require.NoError(t, err)
	assert.Equal(t, registered.Account.ID, loggedIn.Account.ID)
	assert.Equal(t, registered.Account.Handle, loggedIn.Account.Handle)
}

func TestAccountService_Login_WrongPasswordAndUnknownHandleAreIndistinguishable(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerInput())
	require.NoError(t, err)

	_, wrongPassErr := fx.service.Login(ctx, &usecase.LoginInput{Handle: "drsmith", Password: "wrong"})
	require.Error(t, wrongPassErr)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Handle: "nosuchuser", Password: "whatever"})
	require.Error(t, unknownErr)

	// Both reject with the same domain error and therefore the same message,
	// status and code; the caller cannot tell which field was wrong.
	assert.True(t, errors.Is(wrongPassErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))

	var wrongApp, unknownApp domainerrors.AppError
	require.True(t, errors.As(wrongPassErr, &wrongApp))
	require.True(t, errors.As(unknownErr, &unknownApp))
	assert.Equal(t, wrongApp.Message(), unknownApp.Message())
	assert.Equal(t, "Invalid credentials", wrongApp.Message())
	assert.Equal(t, wrongApp.HTTPCode(), unknownApp.HTTPCode())
}

func TestAccountService_Login_EmptyInputFailsBeforeStore(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	for _, input := range []*usecase.LoginInput{
		{Handle: "", Password: "secret"},
		{Handle: "drsmith", Password: ""},
		{},
	} {
		_, err := fx.service.Login(ctx, input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestAccountService_Register_DuplicateHandle(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerInput())
	require.NoError(t, err)

	second := registerInput()
	second.DisplayName = "Another Smith"
	_, err = fx.service.Register(ctx, second)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateHandle))
	assert.Equal(t, 1, fx.repo.Count())
}

func TestAccountService_Register_ConcurrentDuplicates(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	const racers = 8
	results := make([]error, racers)
	var wg sync.WaitGroup
	wg.Add(racers)
	for i := range racers {
		go func() {
			defer wg.Done()
			_, results[i] = fx.service.Register(ctx, registerInput())
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateHandle))
	}

	// Exactly one racer wins; the store holds a single record for the handle.
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, fx.repo.Count())
}

func TestAccountService_OutputsNeverContainPasswordHash(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, registerInput())
	require.NoError(t, err)

	loggedIn, err := fx.service.Login(ctx, &usecase.LoginInput{Handle: "drsmith", Password: "Sw0rdfish!"})
	require.NoError(t, err)

	listed, err := fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	stored, err := fx.repo.FindByHandle(ctx, "drsmith")
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)

	for _, output := range []any{registered.Account, loggedIn.Account, listed} {
		serialized, err := json.Marshal(output)
		require.NoError(t, err)
		assert.NotContains(t, string(serialized), stored.PasswordHash)
		assert.NotContains(t, string(serialized), "password")
	}
}

func TestAccountService_Register_StoresRoleVerbatim(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := registerInput()
	input.Role = "Janitor" // not a known role; stored as-is
	registered, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Janitor", registered.Account.Role.String())
	assert.False(t, registered.Account.Role.IsValid())
}
