package services

import (
	"errors"
	"fmt"

	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/repository"
	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact not found")

// ContactService handles the shared address book. Contacts are not scoped to
// an owner: any authenticated user may list and modify any entry.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// List returns all contacts
func (s *ContactService) List() ([]models.Contact, error) {
	contacts, err := s.contactRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Get returns a contact by ID
func (s *ContactService) Get(id uint64) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return contact, nil
}

// Create persists a new contact
func (s *ContactService) Create(contact *models.Contact) error {
	if err := s.contactRepo.Create(contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// Update saves all fields of a contact
func (s *ContactService) Update(contact *models.Contact) error {
	if err := s.contactRepo.Update(contact); err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// Delete removes a contact by ID
func (s *ContactService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.contactRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
