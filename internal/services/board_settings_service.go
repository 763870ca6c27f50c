package services

import (
	"errors"
	"fmt"

	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSettingsNotFound = errors.New("board settings not found")
	ErrUserIDTaken      = errors.New("board settings already exist for this user")
)

// BoardSettingsService handles per-user board view preferences. Rows are
// addressed by the owning user's ID, never by the internal row ID.
type BoardSettingsService struct {
	settingsRepo repository.BoardSettingsRepository
}

// NewBoardSettingsService creates a new BoardSettingsService
func NewBoardSettingsService(settingsRepo repository.BoardSettingsRepository) *BoardSettingsService {
	return &BoardSettingsService{settingsRepo: settingsRepo}
}

// List returns all settings rows
func (s *BoardSettingsService) List() ([]models.BoardSettings, error) {
	settings, err := s.settingsRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list board settings: %w", err)
	}
	return settings, nil
}

// Get returns the settings row for a user
func (s *BoardSettingsService) Get(userID string) (*models.BoardSettings, error) {
	settings, err := s.settingsRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to find board settings: %w", err)
	}
	return settings, nil
}

// Create persists a new settings row. A second row for the same user fails
// with ErrUserIDTaken; create never merges into an existing row.
func (s *BoardSettingsService) Create(settings *models.BoardSettings) error {
	if _, err := s.settingsRepo.FindByUserID(settings.UserID); err == nil {
		return ErrUserIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check board settings: %w", err)
	}

	if settings.ViewMode == "" {
		settings.ViewMode = "public"
	}
	if err := s.settingsRepo.Create(settings); err != nil {
		return fmt.Errorf("failed to create board settings: %w", err)
	}
	return nil
}

// Update saves all fields of a settings row
func (s *BoardSettingsService) Update(settings *models.BoardSettings) error {
	if err := s.settingsRepo.Update(settings); err != nil {
		return fmt.Errorf("failed to update board settings: %w", err)
	}
	return nil
}

// Delete removes the settings row for a user
func (s *BoardSettingsService) Delete(userID string) error {
	settings, err := s.Get(userID)
	if err != nil {
		return err
	}
	if err := s.settingsRepo.Delete(settings.ID); err != nil {
		return fmt.Errorf("failed to delete board settings: %w", err)
	}
	return nil
}
