package usecase

import (
	"fmt"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/repo/persistent"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"
)

type SiteUseCase interface {
	HomePage() (*models.SiteSettings, error)
	AboutPage() (*models.Profile, []*models.SocialLink, error)
}

type siteUseCase struct {
	settingsRepo   persistent.SettingsRepository
	socialLinkRepo persistent.SocialLinkRepository
}

func NewSiteUseCase(settingsRepo persistent.SettingsRepository, socialLinkRepo persistent.SocialLinkRepository) SiteUseCase {
	return &siteUseCase{
		settingsRepo:   settingsRepo,
		socialLinkRepo: socialLinkRepo,
	}
}

// HomePage returns the configured site settings, or nil when the operator has
// not set any up yet. The empty state is not an error.
func (uc *siteUseCase) HomePage() (*models.SiteSettings, error) {
	settings, err := uc.settingsRepo.GetSiteSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}
	return settings, nil
}

func (uc *siteUseCase) AboutPage() (*models.Profile, []*models.SocialLink, error) {
	profile, err := uc.settingsRepo.GetProfile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load profile: %w", err)
	}

	links, err := uc.socialLinkRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load social links: %w", err)
	}

	return profile, links, nil
}
