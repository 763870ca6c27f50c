package models

// BoardSettings stores per-user board view preferences, one row per user.
// UserID is the external lookup key; ViewMode is free text, not enum-checked.
type BoardSettings struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	UserID      string `gorm:"type:varchar(100);uniqueIndex;not null" json:"userId"`
	ViewMode    string `gorm:"type:varchar(10);not null;default:'public'" json:"viewMode"`
	LastChanged string `gorm:"type:varchar(50)" json:"lastChanged"`
}
