package impl

import (
	"io"
	"log/slog"

	"clinic/config"
	"clinic/internal/domain/service"
	"clinic/internal/infra/auth"

	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestHasher returns the real bcrypt hasher at the minimum cost so the
// credential path is exercised end to end without slowing the suite down.
func newTestHasher() service.PasswordHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	return auth.NewBcryptHasher(cfg)
}
