package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a user-owned label attached to recipes. Names are unique per user,
// compared case-insensitively.
type Tag struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}
