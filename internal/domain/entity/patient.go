package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a person receiving care at the clinic.
type Patient struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DOB       string    `json:"dob"` // Date of birth as YYYY-MM-DD.
	Gender    string    `json:"gender"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
