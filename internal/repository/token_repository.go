package repository

import (
	"errors"

	"github.com/mbeckert/taskboard-api/internal/models"
	"gorm.io/gorm"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// FindByKey finds a token by its key, preloading the owning user
func (r *GormTokenRepository) FindByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Preload("User").Where("token_key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// GetOrCreate returns the user's existing token, creating one with the given
// key if the user has none. An existing token is never rotated.
func (r *GormTokenRepository) GetOrCreate(userID uint64, key string) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token = models.AuthToken{Key: key, UserID: userID}
	if err := r.db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
