package persistent

import (
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

type WorkImageRepository interface {
	Create(image *models.WorkImage) error
	GetByID(id string) (*models.WorkImage, error)
	ListByWork(workID string) ([]*models.WorkImage, error)
	UpdateOrder(id string, order int) error
	Delete(id string) error
}

type workImageRepository struct {
	db *gorm.DB
}

func NewWorkImageRepository(db *gorm.DB) WorkImageRepository {
	return &workImageRepository{db: db}
}

func (r *workImageRepository) Create(image *models.WorkImage) error {
	return r.db.Create(image).Error
}

func (r *workImageRepository) GetByID(id string) (*models.WorkImage, error) {
	var image models.WorkImage
	if err := r.db.Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *workImageRepository) ListByWork(workID string) ([]*models.WorkImage, error) {
	var images []*models.WorkImage
	err := r.db.Where("work_id = ?", workID).Order("\"order\" ASC, created_at ASC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *workImageRepository) UpdateOrder(id string, order int) error {
	return r.db.Model(&models.WorkImage{}).Where("id = ?", id).Update("order", order).Error
}

func (r *workImageRepository) Delete(id string) error {
	return r.db.Delete(&models.WorkImage{}, "id = ?", id).Error
}
