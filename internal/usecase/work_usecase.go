package usecase

import (
	"errors"
	"fmt"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/repo/persistent"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

// WorkDetail is the view model for a single work page: the work itself, its
// gallery in display order, its comments newest-first, the derived like count
// and the temporally adjacent works for prev/next navigation.
type WorkDetail struct {
	Work      *models.Work
	Images    []models.WorkImage
	Comments  []*models.Comment
	LikeCount int64
	PrevWork  *models.Work
	NextWork  *models.Work
}

type WorkUseCase interface {
	ListWorks(categoryID string) ([]*models.Work, error)
	Categories() ([]*models.Category, error)
	WorkDetail(id string) (*WorkDetail, error)
}

type workUseCase struct {
	workRepo     persistent.WorkRepository
	categoryRepo persistent.CategoryRepository
	commentRepo  persistent.CommentRepository
	likeRepo     persistent.LikeRepository
}

func NewWorkUseCase(
	workRepo persistent.WorkRepository,
	categoryRepo persistent.CategoryRepository,
	commentRepo persistent.CommentRepository,
	likeRepo persistent.LikeRepository,
) WorkUseCase {
	return &workUseCase{
		workRepo:     workRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
	}
}

// ListWorks returns works newest-first, optionally restricted to one
// category. A filter naming a category that does not exist behaves like no
// filter at all and returns the full set.
func (uc *workUseCase) ListWorks(categoryID string) ([]*models.Work, error) {
	if categoryID != "" {
		if _, err := uc.categoryRepo.GetByID(categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				categoryID = ""
			} else {
				return nil, fmt.Errorf("failed to resolve category filter: %w", err)
			}
		}
	}

	works, err := uc.workRepo.List(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return works, nil
}

func (uc *workUseCase) Categories() ([]*models.Category, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (uc *workUseCase) WorkDetail(id string) (*WorkDetail, error) {
	work, err := uc.workRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to load work: %w", err)
	}

	comments, err := uc.commentRepo.ListByWork(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	likeCount, err := uc.likeRepo.CountByWork(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	prev, err := uc.workRepo.Previous(work)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve previous work: %w", err)
	}

	next, err := uc.workRepo.Next(work)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve next work: %w", err)
	}

	return &WorkDetail{
		Work:      work,
		Images:    work.Images,
		Comments:  comments,
		LikeCount: likeCount,
		PrevWork:  prev,
		NextWork:  next,
	}, nil
}
