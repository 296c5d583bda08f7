package model

import "time"

// MaxUsernameLength matches the username column width.
const MaxUsernameLength = 50

// User is a registered owner of a media list.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Media []Media `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
