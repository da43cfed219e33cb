package usecase

import (
	"context"
	"time"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentInput defines the fields accepted when scheduling an appointment.
// Status is not accepted from the caller; every new appointment starts as Scheduled.
type AppointmentInput struct {
	PatientID   uuid.UUID `json:"patientId" validate:"required"`
	PatientName string    `json:"patientName"`
	DoctorName  string    `json:"doctorName" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Reason      string    `json:"reason"`
}

// AppointmentUsecase defines the interface for appointment-related business operations.
type AppointmentUsecase interface {
	// List returns all appointments, newest first.
	List(ctx context.Context) ([]*entity.Appointment, error)

	// Create schedules a new appointment with status Scheduled.
	Create(ctx context.Context, input *AppointmentInput) (*entity.Appointment, error)
}
