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

// recordRepository implements the domain.RecordRepository interface using GORM.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

// List returns all medical records.
func (repo *recordRepository) List(ctx context.Context) ([]*entity.MedicalRecord, error) {
	var recordMs []model.MedicalRecordModel

	if err := repo.db.WithContext(ctx).Find(&recordMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list medical records")
	}

	records := make([]*entity.MedicalRecord, 0, len(recordMs))
	for i := range recordMs {
		records = append(records, toRecordDomain(&recordMs[i]))
	}

	return records, nil
}

// Create persists a new medical record.
func (repo *recordRepository) Create(ctx context.Context, record *entity.MedicalRecord) error {
	recordM := fromRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPatientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add medical record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// DeleteByPatient removes every medical record belonging to a patient.
func (repo *recordRepository) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Delete(&model.MedicalRecordModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete patient medical records")
	}

	return nil
}

// --- Mapper Functions ---

func toRecordDomain(data *model.MedicalRecordModel) *entity.MedicalRecord {
	if data == nil {
		return nil
	}

	return &entity.MedicalRecord{
		ID:           data.ID,
		PatientID:    data.PatientID,
		DoctorName:   data.DoctorName,
		Date:         data.Date,
		Diagnosis:    data.Diagnosis,
		Prescription: data.Prescription,
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
	}
}

func fromRecordDomain(data *entity.MedicalRecord) *model.MedicalRecordModel {
	if data == nil {
		return nil
	}

	return &model.MedicalRecordModel{
		ID:           data.ID,
		PatientID:    data.PatientID,
		DoctorName:   data.DoctorName,
		Date:         data.Date,
		Diagnosis:    data.Diagnosis,
		Prescription: data.Prescription,
		Notes:        data.Notes,
	}
}
