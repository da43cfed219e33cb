package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/infra/persistence/memory"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patientServiceFixtures struct {
	service usecase.PatientUsecase
	store   *memory.Store
}

func createTestPatientService(t *testing.T) patientServiceFixtures {
	t.Helper()
	store := memory.NewStore()

	return patientServiceFixtures{
		service: NewPatientService(store, newDiscardLogger()),
		store:   store,
	}
}

func patientInput() *usecase.PatientInput {
	return &usecase.PatientInput{
		Name:    "John Smith",
		DOB:     "1985-02-20",
		Gender:  "Male",
		Contact: "555-0101",
		Email:   "john.smith@email.com",
		Address: "123 Maple St, Anytown",
	}
}

func TestPatientService_CreateAndList(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, patientInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "John Smith", created.Name)

	patients, err := fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, created.ID, patients[0].ID)
}

func TestPatientService_Update(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, patientInput())
	require.NoError(t, err)

	updatedInput := patientInput()
	updatedInput.Contact = "555-0199"
	updated, err := fx.service.Update(ctx, created.ID, updatedInput)
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Contact)

	patients, err := fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "555-0199", patients[0].Contact)
}

func TestPatientService_Update_NotFound(t *testing.T) {
	fx := createTestPatientService(t)

	_, err := fx.service.Update(context.Background(), uuid.New(), patientInput())
	assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
}

func TestPatientService_Delete_CascadesAppointmentsAndRecords(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, patientInput())
	require.NoError(t, err)
	other, err := fx.service.Create(ctx, patientInput())
	require.NoError(t, err)

	appointmentSvc := NewAppointmentService(fx.store.AppointmentRepo(), newDiscardLogger())
	recordSvc := NewRecordService(fx.store.RecordRepo(), newDiscardLogger())

	for _, patientID := range []uuid.UUID{created.ID, other.ID} {
		_, err = appointmentSvc.Create(ctx, &usecase.AppointmentInput{
			PatientID:  patientID,
			DoctorName: "Dr. Alan Turing",
			Date:       time.Now().Add(24 * time.Hour),
			Reason:     "Annual Checkup",
		})
		require.NoError(t, err)

		_, err = recordSvc.Create(ctx, &usecase.RecordInput{
			PatientID:  patientID,
			DoctorName: "Dr. Alan Turing",
			Date:       "2025-09-15",
			Diagnosis:  "Hypertension",
		})
		require.NoError(t, err)
	}

	require.NoError(t, fx.service.Delete(ctx, created.ID))

	patients, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, patients, 1)

	appointments, err := appointmentSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, other.ID, appointments[0].PatientID)

	records, err := recordSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, other.ID, records[0].PatientID)
}

func TestPatientService_Delete_NotFound(t *testing.T) {
	fx := createTestPatientService(t)

	err := fx.service.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
}
