package models

import "time"

// ArchiveVisit is the immutable record written when an appointment completes.
// Doctor and patient display fields are frozen at completion time and never
// re-synced with later profile edits.
type ArchiveVisit struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Provenance link; the unique index makes archiving idempotent.
	OriginalAppointmentID uint `gorm:"uniqueIndex;not null" json:"originalAppointmentId"`

	DoctorID  uint `gorm:"index;not null" json:"doctorId"`
	PatientID uint `gorm:"index;not null" json:"patientId"`

	Type      string  `gorm:"size:20;not null" json:"type"`
	Reason    string  `gorm:"size:500" json:"reason"`
	Day       string  `gorm:"size:10" json:"day"`
	StartTime string  `gorm:"size:5" json:"startTime"`
	EndTime   string  `gorm:"size:5" json:"endTime"`
	Price     float64 `json:"price"`

	DoctorName      string `gorm:"size:100" json:"doctorName"`
	DoctorSpecialty string `gorm:"size:50" json:"doctorSpecialization"`
	PatientName     string `gorm:"size:100" json:"patientName"`
	PatientPhone    string `gorm:"size:20" json:"patientPhone"`

	CompletedAt time.Time `gorm:"index" json:"completedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
