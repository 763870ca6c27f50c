package repository

import (
	"errors"
	"fmt"

	"github.com/mbeckert/taskboard-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateUser is returned when user creation fails
	ErrCreateUser = errors.New("failed to create user")
	// ErrCreateContact is returned when contact creation fails
	ErrCreateContact = errors.New("failed to create contact")
	// ErrCreateToken is returned when token creation fails
	ErrCreateToken = errors.New("failed to create token")
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithContact creates a user together with their address book contact
// and their token in a single transaction. Either all three records are
// written or none of them is.
func (r *GormUserRepository) CreateWithContact(user *models.User, contact *models.Contact, token *models.AuthToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		if err := tx.Create(contact).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateContact, err)
		}

		token.UserID = user.ID
		if err := tx.Create(token).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateToken, err)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
