package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPatientNotFound is returned when an update or delete targets a patient
// that does not exist.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines the standard operations for patient persistence.
type PatientRepository interface {
	// List returns all patients.
	List(ctx context.Context) ([]*entity.Patient, error)

	// Create persists a new patient.
	Create(ctx context.Context, patient *entity.Patient) error

	// Update replaces the stored demographic fields of an existing patient.
	Update(ctx context.Context, patient *entity.Patient) error

	// Delete removes a patient row. Dependent appointments and medical
	// records are deleted by the usecase within the same transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
