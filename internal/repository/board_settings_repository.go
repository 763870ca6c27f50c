package repository

import (
	"github.com/mbeckert/taskboard-api/internal/models"
	"gorm.io/gorm"
)

// GormBoardSettingsRepository is a GORM implementation of BoardSettingsRepository
type GormBoardSettingsRepository struct {
	db *gorm.DB
}

// NewBoardSettingsRepository creates a new BoardSettingsRepository
func NewBoardSettingsRepository(db *gorm.DB) BoardSettingsRepository {
	return &GormBoardSettingsRepository{db: db}
}

// Create creates a new settings row
func (r *GormBoardSettingsRepository) Create(settings *models.BoardSettings) error {
	return r.db.Create(settings).Error
}

// List retrieves all settings rows
func (r *GormBoardSettingsRepository) List() ([]models.BoardSettings, error) {
	settings := []models.BoardSettings{}
	if err := r.db.Order("id").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// FindByUserID finds the settings row for a user
func (r *GormBoardSettingsRepository) FindByUserID(userID string) (*models.BoardSettings, error) {
	var settings models.BoardSettings
	if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update saves all fields of a settings row
func (r *GormBoardSettingsRepository) Update(settings *models.BoardSettings) error {
	return r.db.Save(settings).Error
}

// Delete removes a settings row
func (r *GormBoardSettingsRepository) Delete(id uint64) error {
	return r.db.Delete(&models.BoardSettings{}, id).Error
}
