package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	PasswordHash *string   `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`

	// Relations
	Token *AuthToken `gorm:"foreignKey:UserID" json:"-"`
}
