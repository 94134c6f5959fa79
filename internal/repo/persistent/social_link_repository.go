package persistent

import (
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

type SocialLinkRepository interface {
	Create(link *models.SocialLink) error
	GetByID(id string) (*models.SocialLink, error)
	List() ([]*models.SocialLink, error)
	Update(link *models.SocialLink) error
	Delete(id string) error
}

type socialLinkRepository struct {
	db *gorm.DB
}

func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (r *socialLinkRepository) Create(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

func (r *socialLinkRepository) GetByID(id string) (*models.SocialLink, error) {
	var link models.SocialLink
	if err := r.db.Where("id = ?", id).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *socialLinkRepository) List() ([]*models.SocialLink, error) {
	var links []*models.SocialLink
	if err := r.db.Order("\"order\" ASC, created_at ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *socialLinkRepository) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

func (r *socialLinkRepository) Delete(id string) error {
	return r.db.Delete(&models.SocialLink{}, "id = ?", id).Error
}
