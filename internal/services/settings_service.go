package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
)

// settingsService is the per-user preference store: small key-value
// pairs such as the last selected year on the debt dashboard.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// Get returns the setting for a user and key.
func (s *settingsService) Get(userID uint, key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.Where("user_id = ? AND key = ?", userID, key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &setting, nil
}

// Set upserts the setting on the (user, key) composite key.
func (s *settingsService) Set(userID uint, key, value string) (*models.Setting, error) {
	setting := models.Setting{
		UserID: userID,
		Key:    key,
		Value:  value,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &setting, nil
}
