package impl

import (
	"context"
	"log/slog"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// patientService implements the PatientUsecase interface.
type patientService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPatientService is the constructor for patientService.
func NewPatientService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PatientUsecase {
	return &patientService{
		txManager: txManager,
		logger:    logger,
	}
}

// List returns all patients.
func (srv *patientService) List(ctx context.Context) ([]*entity.Patient, error) {
	var patients []*entity.Patient

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PatientRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list patients")
		}
		patients = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute patient list")
	}

	return patients, nil
}

// Create registers a new patient.
func (srv *patientService) Create(ctx context.Context, input *usecase.PatientInput) (*entity.Patient, error) {
	srv.logger.Info("Adding patient", "name", input.Name)

	patient := &entity.Patient{
		Name:    input.Name,
		DOB:     input.DOB,
		Gender:  input.Gender,
		Contact: input.Contact,
		Email:   input.Email,
		Address: input.Address,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PatientRepo().Create(ctx, patient)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create patient")
	}

	srv.logger.Debug("Patient added", "patientID", patient.ID)

	return patient, nil
}

// Update replaces the demographic fields of an existing patient.
func (srv *patientService) Update(ctx context.Context, id uuid.UUID, input *usecase.PatientInput) (*entity.Patient, error) {
	srv.logger.Info("Updating patient", "patientID", id)

	patient := &entity.Patient{
		ID:      id,
		Name:    input.Name,
		DOB:     input.DOB,
		Gender:  input.Gender,
		Contact: input.Contact,
		Email:   input.Email,
		Address: input.Address,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PatientRepo().Update(ctx, patient); err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				return errors.Wrap(domainerrors.ErrPatientNotFound, "patient update failed")
			}

			return errors.Wrap(err, "failed to update patient")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return patient, nil
}

// Delete removes a patient and everything that references them. The three
// deletes run in one transaction so a failure cannot leave orphaned
// appointments or records.
func (srv *patientService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting patient", "patientID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RecordRepo().DeleteByPatient(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete patient medical records")
		}
		if err := repoFactory.AppointmentRepo().DeleteByPatient(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete patient appointments")
		}
		if err := repoFactory.PatientRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				return errors.Wrap(domainerrors.ErrPatientNotFound, "patient delete failed")
			}

			return errors.Wrap(err, "failed to delete patient")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Debug("Patient deleted", "patientID", id)

	return nil
}
