package models

import (
	"time"
)

type Room struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:30;uniqueIndex;not null"`
	Description string
	HostID      *uint
	TopicID     *uint
	IsClosed    bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time

	Host  *User  `gorm:"foreignKey:HostID;constraint:OnDelete:SET NULL"`
	Topic *Topic `gorm:"foreignKey:TopicID;constraint:OnDelete:SET NULL"`

	// Viewers grows on authenticated visits, Participants on posts.
	// Membership is never removed.
	Viewers      []User `gorm:"many2many:room_viewers"`
	Participants []User `gorm:"many2many:room_participants"`
}
