package models

type Topic struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:30;uniqueIndex;not null"`
	Description  string
	IsRestricted bool `gorm:"default:false"`

	// Whitelist of users allowed to create rooms when IsRestricted is set.
	AllowedUsers []User `gorm:"many2many:topic_allowed_users"`
}
