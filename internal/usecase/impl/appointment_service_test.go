package impl

import (
	"context"
	"testing"
	"time"

	"clinic/internal/domain/entity"
	"clinic/internal/infra/persistence/memory"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentService_CreateAssignsScheduledStatus(t *testing.T) {
	store := memory.NewStore()
	service := NewAppointmentService(store.AppointmentRepo(), newDiscardLogger())

	created, err := service.Create(context.Background(), &usecase.AppointmentInput{
		PatientID:   uuid.New(),
		PatientName: "John Smith",
		DoctorName:  "Dr. Alan Turing",
		Date:        time.Now().Add(24 * time.Hour),
		Reason:      "Annual Checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentScheduled, created.Status)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestAppointmentService_ListNewestFirst(t *testing.T) {
	store := memory.NewStore()
	service := NewAppointmentService(store.AppointmentRepo(), newDiscardLogger())
	ctx := context.Background()

	base := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{0, 48 * time.Hour, 24 * time.Hour} {
		_, err := service.Create(ctx, &usecase.AppointmentInput{
			PatientID:  uuid.New(),
			DoctorName: "Dr. Ada Lovelace",
			Date:       base.Add(offset),
			Reason:     "Follow-up",
		})
		require.NoError(t, err)
	}

	appointments, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 3)
	assert.True(t, appointments[0].Date.After(appointments[1].Date))
	assert.True(t, appointments[1].Date.After(appointments[2].Date))
}
