package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table.
type AppointmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PatientName string    `gorm:"type:varchar(100)"`
	DoctorName  string    `gorm:"type:varchar(100)"`
	Date        time.Time `gorm:"not null;index"`
	Reason      string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
