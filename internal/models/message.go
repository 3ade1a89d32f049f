package models

import (
	"time"
)

type Message struct {
	ID      uint   `gorm:"primaryKey"`
	Content string `gorm:"not null"`
	UserID  uint   `gorm:"not null"`
	RoomID  uint   `gorm:"not null;index"`

	// ParentID points at a top-level message in the same room.
	// Replies cannot themselves be replied to.
	ParentID  *uint `gorm:"index"`
	CreatedAt time.Time
	IsChanged bool `gorm:"default:false"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Room Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`

	// A user may appear in at most one of the two sets.
	Pluses  []User `gorm:"many2many:message_pluses"`
	Minuses []User `gorm:"many2many:message_minuses"`
}
