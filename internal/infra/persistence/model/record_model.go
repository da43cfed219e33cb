package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecordModel mirrors the 'medical_records' table.
type MedicalRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DoctorName   string    `gorm:"type:varchar(100)"`
	Date         string    `gorm:"type:varchar(10)"`
	Diagnosis    string    `gorm:"type:text"`
	Prescription string    `gorm:"type:text"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicalRecordModel) TableName() string {
	return "medical_records"
}
