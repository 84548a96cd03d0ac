package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Specialty   string `gorm:"size:50;not null" json:"specialty"`
	Governorate string `gorm:"size:50;not null" json:"governorate"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:20" json:"phone"`
	Age         int    `json:"age"`
	Bio         string `gorm:"size:1000" json:"bio"`
	Experience  int    `json:"experience"`

	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	// Recomputed from reviews on every add/delete. 0 with no reviews.
	AverageRating float64 `gorm:"default:0" json:"averageRating"`

	Photo    string `gorm:"size:500" json:"photo"`
	PhotoKey string `gorm:"size:255" json:"-"`

	Slots []Slot `gorm:"constraint:OnDelete:CASCADE;" json:"availableSlots,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Slot is a recurring weekly availability window owned by one doctor.
// Rows only ever reached through doctor-scoped queries.
type Slot struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	DoctorID uint   `gorm:"index;not null" json:"doctorId"`

	Day          string `gorm:"size:10;not null" json:"day"`
	StartTime    string `gorm:"size:5;not null" json:"startTime"`
	EndTime      string `gorm:"size:5;not null" json:"endTime"`
	SlotDuration int    `gorm:"default:30" json:"slotDuration"`

	// False while an active appointment references this slot, true otherwise.
	// Maintained by the appointment lifecycle, not by the slot itself.
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
	Type        string `gorm:"size:20;default:'consultation'" json:"type"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
