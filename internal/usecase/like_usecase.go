package usecase

import (
	"fmt"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/repo/persistent"
)

type LikeUseCase interface {
	LikeWork(workID string) (int64, error)
}

type likeUseCase struct {
	workRepo persistent.WorkRepository
	likeRepo persistent.LikeRepository
}

func NewLikeUseCase(workRepo persistent.WorkRepository, likeRepo persistent.LikeRepository) LikeUseCase {
	return &likeUseCase{
		workRepo: workRepo,
		likeRepo: likeRepo,
	}
}

// LikeWork appends one like event and returns the new total. Every call adds
// exactly one unit; there is no per-visitor dedup and no undo.
func (uc *likeUseCase) LikeWork(workID string) (int64, error) {
	exists, err := uc.workRepo.Exists(workID)
	if err != nil {
		return 0, fmt.Errorf("failed to check work: %w", err)
	}
	if !exists {
		return 0, ErrWorkNotFound
	}

	if err := uc.likeRepo.Create(workID); err != nil {
		return 0, fmt.Errorf("failed to register like: %w", err)
	}

	count, err := uc.likeRepo.CountByWork(workID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
