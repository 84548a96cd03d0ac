package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Phone  string `gorm:"size:20" json:"phone"`
	Age    int    `json:"age"`
	Gender string `gorm:"size:10" json:"gender"`

	Photo    string `gorm:"size:500" json:"photo"`
	PhotoKey string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompletedVisitRef is a patient's back-reference into the archive.
// Append-only; the composite unique index makes duplicate appends no-ops.
type CompletedVisitRef struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	PatientID      uint `gorm:"uniqueIndex:idx_patient_visit;not null" json:"patientId"`
	ArchiveVisitID uint `gorm:"uniqueIndex:idx_patient_visit;not null" json:"archiveVisitId"`

	CreatedAt time.Time `json:"createdAt"`
}
