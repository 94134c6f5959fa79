package persistent

import (
	"errors"

	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

// SettingsRepository reads and writes the singleton configuration aggregates.
// Both SiteSettings and Profile are "first row wins": Save updates the
// existing row when one exists instead of creating a second.
type SettingsRepository interface {
	GetSiteSettings() (*models.SiteSettings, error)
	SaveSiteSettings(settings *models.SiteSettings) error
	GetProfile() (*models.Profile, error)
	SaveProfile(profile *models.Profile) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetSiteSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.Order("created_at ASC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) SaveSiteSettings(settings *models.SiteSettings) error {
	existing, err := r.GetSiteSettings()
	if err != nil {
		return err
	}
	if existing != nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		return r.db.Save(settings).Error
	}
	return r.db.Create(settings).Error
}

func (r *settingsRepository) GetProfile() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("created_at ASC").First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *settingsRepository) SaveProfile(profile *models.Profile) error {
	existing, err := r.GetProfile()
	if err != nil {
		return err
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return r.db.Save(profile).Error
	}
	return r.db.Create(profile).Error
}
