package usecase

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientInput defines the demographic fields accepted on patient create and update.
type PatientInput struct {
	Name    string `json:"name" validate:"required"`
	DOB     string `json:"dob"`
	Gender  string `json:"gender"`
	Contact string `json:"contact"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

// PatientUsecase defines the interface for patient-related business operations.
type PatientUsecase interface {
	// List returns all patients.
	List(ctx context.Context) ([]*entity.Patient, error)

	// Create registers a new patient.
	Create(ctx context.Context, input *PatientInput) (*entity.Patient, error)

	// Update replaces the demographic fields of an existing patient.
	Update(ctx context.Context, id uuid.UUID, input *PatientInput) (*entity.Patient, error)

	// Delete removes a patient together with their appointments and medical
	// records, atomically.
	Delete(ctx context.Context, id uuid.UUID) error
}
