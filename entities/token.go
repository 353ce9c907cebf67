package entities

import "time"

// AuthToken is the opaque bearer credential handed out on login. The key is
// the token string presented in the Authorization header.
type AuthToken struct {
	Key       string    `gorm:"type:text;primaryKey" json:"token"`
	UserID    string    `gorm:"index;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
