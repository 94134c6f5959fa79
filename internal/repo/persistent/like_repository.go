package persistent

import (
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(workID string) error
	CountByWork(workID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create appends one like event. Likes are rows, not a counter column, so
// concurrent calls need no locking to each land.
func (r *likeRepository) Create(workID string) error {
	return r.db.Create(&models.Like{WorkID: workID}).Error
}

func (r *likeRepository) CountByWork(workID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("work_id = ?", workID).Count(&count).Error
	return count, err
}
