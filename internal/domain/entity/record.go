package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is a single clinical note: diagnosis, prescription and free
// text written by a doctor after seeing a patient.
type MedicalRecord struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patientId"`
	DoctorName   string    `json:"doctorName"`
	Date         string    `json:"date"` // Visit date as YYYY-MM-DD.
	Diagnosis    string    `json:"diagnosis"`
	Prescription string    `json:"prescription"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"-"`
}
