package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient has the same shape as Tag but lives in its own namespace.
type Ingredient struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}
