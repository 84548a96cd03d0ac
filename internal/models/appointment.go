package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `gorm:"index;not null" json:"doctorId"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor,omitempty"`

	PatientID uint    `gorm:"index;not null" json:"patientId"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient,omitempty"`

	// Identifier of the doctor's slot this booking holds, not a live copy.
	SlotID string `gorm:"size:36;not null" json:"slotId"`

	Type   string `gorm:"size:20;not null" json:"type"`
	Reason string `gorm:"size:500;not null" json:"reason"`

	Day       string  `gorm:"size:10;not null" json:"day"`
	StartTime string  `gorm:"size:5;not null" json:"startTime"`
	EndTime   string  `gorm:"size:5;not null" json:"endTime"`
	Price     float64 `gorm:"not null" json:"price"`

	Status      string     `gorm:"size:20;default:'confirmed'" json:"status"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
