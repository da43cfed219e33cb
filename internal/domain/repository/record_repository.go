package repository

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordRepository defines the standard operations for medical record persistence.
type RecordRepository interface {
	// List returns all medical records.
	List(ctx context.Context) ([]*entity.MedicalRecord, error)

	// Create persists a new medical record.
	Create(ctx context.Context, record *entity.MedicalRecord) error

	// DeleteByPatient removes every medical record belonging to a patient.
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}
