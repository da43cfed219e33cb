package impl

import (
	"context"
	"log/slog"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"

	"github.com/pkg/errors"
)

// recordService implements the RecordUsecase interface.
type recordService struct {
	recordRepo repository.RecordRepository
	logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(
	recordRepo repository.RecordRepository,
	logger *slog.Logger,
) usecase.RecordUsecase {
	return &recordService{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// List returns all medical records.
func (srv *recordService) List(ctx context.Context) ([]*entity.MedicalRecord, error) {
	records, err := srv.recordRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medical records")
	}

	return records, nil
}

// Create adds a new medical record.
func (srv *recordService) Create(ctx context.Context, input *usecase.RecordInput) (*entity.MedicalRecord, error) {
	srv.logger.Info("Adding medical record", "patientID", input.PatientID, "doctor", input.DoctorName)

	record := &entity.MedicalRecord{
		PatientID:    input.PatientID,
		DoctorName:   input.DoctorName,
		Date:         input.Date,
		Diagnosis:    input.Diagnosis,
		Prescription: input.Prescription,
		Notes:        input.Notes,
	}

	if err := srv.recordRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to add medical record")
	}

	srv.logger.Debug("Medical record added", "recordID", record.ID)

	return record, nil
}
