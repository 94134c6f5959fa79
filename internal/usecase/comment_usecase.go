package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/repo/persistent"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

type CommentUseCase interface {
	AddComment(workID, authorName, password, content string) (*models.Comment, error)
	DeleteComment(workID, commentID, password string) error
}

type commentUseCase struct {
	workRepo    persistent.WorkRepository
	commentRepo persistent.CommentRepository
	logger      *logger.Logger
}

func NewCommentUseCase(workRepo persistent.WorkRepository, commentRepo persistent.CommentRepository, log *logger.Logger) CommentUseCase {
	return &commentUseCase{
		workRepo:    workRepo,
		commentRepo: commentRepo,
		logger:      log,
	}
}

// AddComment creates a visitor comment. All three inputs are trimmed first;
// if any trims down to nothing the comment is rejected and nothing is
// written.
func (uc *commentUseCase) AddComment(workID, authorName, password, content string) (*models.Comment, error) {
	authorName = strings.TrimSpace(authorName)
	password = strings.TrimSpace(password)
	content = strings.TrimSpace(content)

	if authorName == "" || password == "" || content == "" {
		return nil, ErrValidation
	}

	exists, err := uc.workRepo.Exists(workID)
	if err != nil {
		return nil, fmt.Errorf("failed to check work: %w", err)
	}
	if !exists {
		return nil, ErrWorkNotFound
	}

	comment := &models.Comment{
		WorkID:     workID,
		AuthorName: authorName,
		Password:   password,
		Content:    content,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes a comment when the supplied password exactly matches
// the one stored at creation time. The stored value is compared as-is; see
// DESIGN.md for the hashing substitution a hardened deployment would make.
func (uc *commentUseCase) DeleteComment(workID, commentID, password string) error {
	comment, err := uc.commentRepo.GetByID(workID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to load comment: %w", err)
	}

	if strings.TrimSpace(password) != comment.Password {
		return ErrWrongPassword
	}

	if err := uc.commentRepo.Delete(comment.ID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	uc.logger.Info("Comment %s deleted from work %s", comment.ID, workID)
	return nil
}
