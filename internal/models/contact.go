package models

// Contact is an address book entry. Contacts created during registration
// share the user's email but carry no foreign key to the users table.
type Contact struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Firstname string `gorm:"type:varchar(100)" json:"firstname"`
	Lastname  string `gorm:"type:varchar(100)" json:"lastname"`
	Email     string `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
}
