package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table.
type PatientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	DOB       string    `gorm:"type:varchar(10)"`
	Gender    string    `gorm:"type:varchar(20)"`
	Contact   string    `gorm:"type:varchar(50)"`
	Email     string    `gorm:"type:varchar(255)"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Appointments   []AppointmentModel   `gorm:"foreignKey:PatientID"`
	MedicalRecords []MedicalRecordModel `gorm:"foreignKey:PatientID"`
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
