package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ActorRole string `gorm:"size:20" json:"actorRole"`
	ActorID   *uint  `json:"actorId"`
	Action    string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entityId"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}
