package impl

import (
	"context"
	"log/slog"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"

	"github.com/pkg/errors"
)

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	logger          *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	logger *slog.Logger,
) usecase.AppointmentUsecase {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List returns all appointments, newest first.
func (srv *appointmentService) List(ctx context.Context) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return appointments, nil
}

// Create schedules a new appointment. The status is always Scheduled;
// whatever the caller sent is ignored.
func (srv *appointmentService) Create(ctx context.Context, input *usecase.AppointmentInput) (*entity.Appointment, error) {
	srv.logger.Info("Scheduling appointment", "patientID", input.PatientID, "doctor", input.DoctorName)

	appointment := &entity.Appointment{
		PatientID:   input.PatientID,
		PatientName: input.PatientName,
		DoctorName:  input.DoctorName,
		Date:        input.Date,
		Reason:      input.Reason,
		Status:      entity.AppointmentScheduled,
	}

	if err := srv.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to schedule appointment")
	}

	srv.logger.Debug("Appointment scheduled", "appointmentID", appointment.ID)

	return appointment, nil
}
