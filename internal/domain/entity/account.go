// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a staff identity record: the person who logs into the system.
// PasswordHash is the bcrypt-derived form of the password and must never be
// serialized to a caller; every outward-facing shape goes through Public().
type Account struct {
	ID           uuid.UUID // System-assigned identifier, immutable after creation.
	Handle       string    // Case-sensitive login identifier, unique across accounts.
	PasswordHash string    // Salted one-way derivation of the password. Internal only.
	Role         Role      // Admin, Doctor or Receptionist.
	DisplayName  string    // Free-text profile label shown in the UI.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicAccount is the externally visible projection of an Account.
// It deliberately has no field that could carry the password hash.
type PublicAccount struct {
	ID          uuid.UUID `json:"id"`
	Handle      string    `json:"username"`
	Role        Role      `json:"role"`
	DisplayName string    `json:"name"`
}

// Public strips the credential material from the account.
func (a *Account) Public() *PublicAccount {
	if a == nil {
		return nil
	}

	return &PublicAccount{
		ID:          a.ID,
		Handle:      a.Handle,
		Role:        a.Role,
		DisplayName: a.DisplayName,
	}
}
