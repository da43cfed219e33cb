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

// patientRepository implements the domain.PatientRepository interface using GORM.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

// List returns all patients.
func (repo *patientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	var patientMs []model.PatientModel

	if err := repo.db.WithContext(ctx).Find(&patientMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	patients := make([]*entity.Patient, 0, len(patientMs))
	for i := range patientMs {
		patients = append(patients, toPatientDomain(&patientMs[i]))
	}

	return patients, nil
}

// Create persists a new patient.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required patient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// Update replaces the stored demographic fields of an existing patient.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", patient.ID).
		Updates(map[string]any{
			"name":    patient.Name,
			"dob":     patient.DOB,
			"gender":  patient.Gender,
			"contact": patient.Contact,
			"email":   patient.Email,
			"address": patient.Address,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// Delete removes a patient row. Returns ErrPatientNotFound when no row matched.
func (repo *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PatientModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:        data.ID,
		Name:      data.Name,
		DOB:       data.DOB,
		Gender:    data.Gender,
		Contact:   data.Contact,
		Email:     data.Email,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:      data.ID,
		Name:    data.Name,
		DOB:     data.DOB,
		Gender:  data.Gender,
		Contact: data.Contact,
		Email:   data.Email,
		Address: data.Address,
	}
}
