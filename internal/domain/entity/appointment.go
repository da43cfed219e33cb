package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus tracks the lifecycle of an appointment.
type AppointmentStatus string

const (
	// AppointmentScheduled is the status every new appointment is created with.
	AppointmentScheduled AppointmentStatus = "Scheduled"
)

// Appointment represents a scheduled visit of a patient with a doctor.
// Status is server-assigned: creation always starts at Scheduled regardless
// of what the caller sends.
type Appointment struct {
	ID          uuid.UUID         `json:"id"`
	PatientID   uuid.UUID         `json:"patientId"`
	PatientName string            `json:"patientName"`
	DoctorName  string            `json:"doctorName"`
	Date        time.Time         `json:"date"`
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"-"`
}
