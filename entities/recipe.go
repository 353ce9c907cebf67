package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is the central user-owned entity: a titled item with optional
// time/price fields, tag and ingredient relations and an optional image.
type Recipe struct {
	ID          string         `gorm:"type:text;primaryKey" json:"id"`
	UserID      string         `gorm:"index;not null" json:"user_id"`
	Title       string         `gorm:"not null" json:"title"`
	Minutes     int            `json:"minutes"`
	Price       float64        `json:"price"`
	Link        string         `json:"link"`
	Tags        []Tag          `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient   `gorm:"many2many:recipe_ingredients" json:"ingredients"`
	ImagePath   string         `json:"-"`
	ImageURL    string         `gorm:"-" json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
