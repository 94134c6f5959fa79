package persistent

import (
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Get(id string) (*models.Comment, error)
	GetByID(workID, commentID string) (*models.Comment, error)
	ListByWork(workID string) ([]*models.Comment, error)
	List(limit, offset int) ([]*models.Comment, error)
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Get(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetByID(workID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("id = ? AND work_id = ?", commentID, workID).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByWork(workID string) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("work_id = ?", workID).Order("created_at DESC, id DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) List(limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	query := r.db.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}
