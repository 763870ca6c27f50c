package repository

import (
	"github.com/mbeckert/taskboard-api/internal/models"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// List retrieves all contacts
func (r *GormContactRepository) List() ([]models.Contact, error) {
	contacts := []models.Contact{}
	if err := r.db.Order("id").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindByID finds a contact by ID
func (r *GormContactRepository) FindByID(id uint64) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update saves all fields of a contact
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete removes a contact
func (r *GormContactRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Contact{}, id).Error
}
