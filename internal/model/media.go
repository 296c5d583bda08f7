package model

import "time"

// MaxMediaNameLength matches the name column width, in characters.
const MaxMediaNameLength = 80

// Media is a single tracked item in a user's list.
// (Name, UserID) is unique: a user never owns two items with the same name.
type Media struct {
	ID            uint          `json:"-" gorm:"primaryKey"`
	Name          string        `json:"name" gorm:"size:80;not null;uniqueIndex:idx_media_name_user"`
	UserID        uint          `json:"-" gorm:"not null;uniqueIndex:idx_media_name_user;index"`
	Medium        Medium        `json:"medium" gorm:"type:varchar(20);not null;default:'other';index"`
	ConsumedState ConsumedState `json:"consumed_state" gorm:"type:varchar(20);not null;default:'not started';index"`
	CreatedAt     time.Time     `json:"-"`
	UpdatedAt     time.Time     `json:"-"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// MediaPatch carries the optional fields of a write. A nil field means
// "not supplied" and leaves the stored value unchanged.
type MediaPatch struct {
	Medium        *Medium
	ConsumedState *ConsumedState
}

// Empty reports whether no field was supplied.
func (p MediaPatch) Empty() bool {
	return p.Medium == nil && p.ConsumedState == nil
}

// Columns returns the supplied fields keyed by column name.
func (p MediaPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 2)
	if p.Medium != nil {
		cols["medium"] = string(*p.Medium)
	}
	if p.ConsumedState != nil {
		cols["consumed_state"] = string(*p.ConsumedState)
	}
	return cols
}

// NewMedia builds a row for name owned by userID, applying defaults for
// anything the patch leaves out.
func NewMedia(userID uint, name string, patch MediaPatch) *Media {
	m := &Media{
		Name:          name,
		UserID:        userID,
		Medium:        MediumOther,
		ConsumedState: StateNotStarted,
	}
	if patch.Medium != nil {
		m.Medium = *patch.Medium
	}
	if patch.ConsumedState != nil {
		m.ConsumedState = *patch.ConsumedState
	}
	return m
}

// MediaFilter narrows a listing. Nil fields do not filter.
type MediaFilter struct {
	Medium        *Medium
	ConsumedState *ConsumedState
}
