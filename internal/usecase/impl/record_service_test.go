package impl

import (
	"context"
	"testing"

	"clinic/internal/infra/persistence/memory"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordService_CreateAndList(t *testing.T) {
	store := memory.NewStore()
	service := NewRecordService(store.RecordRepo(), newDiscardLogger())
	ctx := context.Background()

	patientID := uuid.New()
	created, err := service.Create(ctx, &usecase.RecordInput{
		PatientID:    patientID,
		DoctorName:   "Dr. Alan Turing",
		Date:         "2025-09-15",
		Diagnosis:    "Hypertension",
		Prescription: "Lisinopril 10mg",
		Notes:        "Advised lifestyle and diet changes.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	records, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, patientID, records[0].PatientID)
	assert.Equal(t, "Hypertension", records[0].Diagnosis)
}
