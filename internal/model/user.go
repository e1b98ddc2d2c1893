package model

import (
	"time"

	"gorm.io/datatypes"
)

// User is synced from the identity provider on login. Upsert-only
// lifecycle: records are created or refreshed, never edited directly.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Email           *string   `json:"email" gorm:"uniqueIndex"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	IsAdmin         bool      `json:"isAdmin" gorm:"default:false"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Session rows are owned by the auth middleware; nothing else reads the
// payload. Expired rows are purged by a background job.
type Session struct {
	SID    string         `json:"sid" gorm:"primaryKey;column:sid"`
	Sess   datatypes.JSON `json:"sess" gorm:"not null"`
	Expire time.Time      `json:"expire" gorm:"not null;index"`
}

func (Session) TableName() string {
	return "sessions"
}
