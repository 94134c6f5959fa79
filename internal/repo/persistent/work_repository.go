package persistent

import (
	"errors"

	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

type WorkRepository interface {
	Create(work *models.Work) error
	GetByID(id string) (*models.Work, error)
	List(categoryID string) ([]*models.Work, error)
	Update(work *models.Work) error
	Delete(id string) error
	Exists(id string) (bool, error)
	Previous(work *models.Work) (*models.Work, error)
	Next(work *models.Work) (*models.Work, error)
}

type workRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

func (r *workRepository) Create(work *models.Work) error {
	return r.db.Create(work).Error
}

func (r *workRepository) GetByID(id string) (*models.Work, error) {
	var work models.Work
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Preload("Category").
		Where("id = ?", id).
		First(&work).Error
	if err != nil {
		return nil, err
	}
	return &work, nil
}

func (r *workRepository) List(categoryID string) ([]*models.Work, error) {
	var works []*models.Work
	query := r.db.Preload("Category").Order("created_at DESC, id DESC")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if err := query.Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

func (r *workRepository) Update(work *models.Work) error {
	return r.db.Save(work).Error
}

// Delete removes the work and everything it owns. The cascade is explicit so
// it holds even when the store has foreign key enforcement disabled.
func (r *workRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_id = ?", id).Delete(&models.WorkImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Work{}, "id = ?", id).Error
	})
}

func (r *workRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Work{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Previous returns the most recent work created strictly before the given
// one, or nil when none exists. Equal timestamps are tie-broken by id so
// navigation stays stable.
func (r *workRepository) Previous(work *models.Work) (*models.Work, error) {
	var prev models.Work
	err := r.db.
		Where("created_at < ?", work.CreatedAt).
		Order("created_at DESC, id DESC").
		First(&prev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prev, nil
}

// Next returns the earliest work created strictly after the given one, or nil
// when none exists.
func (r *workRepository) Next(work *models.Work) (*models.Work, error) {
	var next models.Work
	err := r.db.
		Where("created_at > ?", work.CreatedAt).
		Order("created_at ASC, id ASC").
		First(&next).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &next, nil
}
