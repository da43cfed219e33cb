package repository

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentRepository defines the standard operations for appointment persistence.
type AppointmentRepository interface {
	// List returns all appointments ordered by date, newest first.
	List(ctx context.Context) ([]*entity.Appointment, error)

	// Create persists a new appointment.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// DeleteByPatient removes every appointment belonging to a patient.
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}
