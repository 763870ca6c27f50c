package repository

import (
	"github.com/mbeckert/taskboard-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateWithContact creates a user, their address book contact, and
	// their token within a single transaction.
	CreateWithContact(user *models.User, contact *models.Contact, token *models.AuthToken) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (case-sensitive, as stored)
	FindByEmail(email string) (*models.User, error)
}

// TokenRepository defines the interface for auth token data access
type TokenRepository interface {
	// FindByKey finds a token by its opaque key, preloading the owning user
	FindByKey(key string) (*models.AuthToken, error)

	// GetOrCreate returns the user's existing token, or persists a new one
	// with the given key if none exists yet
	GetOrCreate(userID uint64, key string) (*models.AuthToken, error)
}

// TaskFilter holds the visibility filter for listing tasks
type TaskFilter struct {
	// Private selects private tasks scoped to OwnerID when true,
	// and public tasks otherwise
	Private bool
	OwnerID string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID on the full, unfiltered table
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks matching the visibility filter
	List(filter TaskFilter) ([]models.Task, error)

	// Update saves all fields of a task
	Update(task *models.Task) error

	// Delete removes a task
	Delete(id uint64) error
}

// BoardSettingsRepository defines the interface for board settings data access.
// The external lookup key is the owning user's ID, not the row ID.
type BoardSettingsRepository interface {
	// Create creates a new settings row
	Create(settings *models.BoardSettings) error

	// List retrieves all settings rows
	List() ([]models.BoardSettings, error)

	// FindByUserID finds the settings row for a user
	FindByUserID(userID string) (*models.BoardSettings, error)

	// Update saves all fields of a settings row
	Update(settings *models.BoardSettings) error

	// Delete removes a settings row
	Delete(id uint64) error
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// List retrieves all contacts
	List() ([]models.Contact, error)

	// FindByID finds a contact by ID
	FindByID(id uint64) (*models.Contact, error)

	// Update saves all fields of a contact
	Update(contact *models.Contact) error

	// Delete removes a contact
	Delete(id uint64) error
}
