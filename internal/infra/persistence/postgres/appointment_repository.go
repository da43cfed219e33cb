package postgres

import (
	"context"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the domain.AppointmentRepository interface using GORM.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// List returns all appointments, newest first.
func (repo *appointmentRepository) List(ctx context.Context) ([]*entity.Appointment, error) {
	var appointmentMs []model.AppointmentModel

	err := repo.db.WithContext(ctx).
		Order("date DESC").
		Find(&appointmentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentMs))
	for i := range appointmentMs {
		appointments = append(appointments, toAppointmentDomain(&appointmentMs[i]))
	}

	return appointments, nil
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPatientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required appointment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to schedule appointment")
	}

	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt

	return nil
}

// DeleteByPatient removes every appointment belonging to a patient.
// Deleting zero rows is not an error here; the cascade caller has already
// established the patient exists.
func (repo *appointmentRepository) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Delete(&model.AppointmentModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete patient appointments")
	}

	return nil
}

// --- Mapper Functions ---

func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:          data.ID,
		PatientID:   data.PatientID,
		PatientName: data.PatientName,
		DoctorName:  data.DoctorName,
		Date:        data.Date,
		Reason:      data.Reason,
		Status:      entity.AppointmentStatus(data.Status),
		CreatedAt:   data.CreatedAt,
	}
}

func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:          data.ID,
		PatientID:   data.PatientID,
		PatientName: data.PatientName,
		DoctorName:  data.DoctorName,
		Date:        data.Date,
		Reason:      data.Reason,
		Status:      string(data.Status),
	}
}
