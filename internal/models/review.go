package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID  uint    `gorm:"uniqueIndex:idx_doctor_patient_review;not null" json:"doctorId"`
	PatientID uint    `gorm:"uniqueIndex:idx_doctor_patient_review;not null" json:"patientId"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient,omitempty"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000;not null" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}
