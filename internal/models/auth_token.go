package models

import "time"

// AuthToken is an opaque bearer token mapped to exactly one user.
// Tokens are issued once and reused; there is no expiry or rotation.
type AuthToken struct {
	Key       string    `gorm:"column:token_key;type:varchar(64);primarykey" json:"key"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
