package usecase

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordInput defines the fields accepted when adding a medical record.
type RecordInput struct {
	PatientID    uuid.UUID `json:"patientId" validate:"required"`
	DoctorName   string    `json:"doctorName" validate:"required"`
	Date         string    `json:"date"`
	Diagnosis    string    `json:"diagnosis"`
	Prescription string    `json:"prescription"`
	Notes        string    `json:"notes"`
}

// RecordUsecase defines the interface for medical record business operations.
type RecordUsecase interface {
	// List returns all medical records.
	List(ctx context.Context) ([]*entity.MedicalRecord, error)

	// Create adds a new medical record.
	Create(ctx context.Context, input *RecordInput) (*entity.MedicalRecord, error)
}
