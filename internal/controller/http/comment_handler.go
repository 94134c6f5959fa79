package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/usecase"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/flash"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	flash          *flash.Store
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, flashStore *flash.Store, log *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		flash:          flashStore,
		logger:         log,
	}
}

func detailPath(workID string) string {
	return fmt.Sprintf("/works/%s/", workID)
}

// Add creates a visitor comment from the detail page form and redirects back
// with a flash message either way.
func (h *CommentHandler) Add(c *gin.Context) {
	workID := c.Param("id")

	authorName := c.PostForm("author_name")
	password := c.PostForm("password")
	content := c.PostForm("content")

	_, err := h.commentUseCase.AddComment(workID, authorName, password, content)
	switch {
	case err == nil:
		h.flash.Success(c, "Comment added.")
	case errors.Is(err, usecase.ErrValidation):
		h.flash.Error(c, "Please fill in all fields.")
	case errors.Is(err, usecase.ErrWorkNotFound):
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	default:
		h.logger.Error("Failed to add comment: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong"})
		return
	}

	c.Redirect(http.StatusFound, detailPath(workID))
}

// Delete removes a comment when the supplied password matches. Wrong
// passwords redirect back with an error flash; the row stays.
func (h *CommentHandler) Delete(c *gin.Context) {
	workID := c.Param("id")
	commentID := c.Param("commentID")
	password := c.PostForm("password")

	err := h.commentUseCase.DeleteComment(workID, commentID, password)
	switch {
	case err == nil:
		h.flash.Success(c, "Comment deleted.")
	case errors.Is(err, usecase.ErrWrongPassword):
		h.flash.Error(c, "Password does not match.")
	case errors.Is(err, usecase.ErrCommentNotFound):
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	default:
		h.logger.Error("Failed to delete comment: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong"})
		return
	}

	c.Redirect(http.StatusFound, detailPath(workID))
}

// RedirectToDetail answers non-POST hits on the comment endpoints. Nothing is
// mutated; the visitor just lands back on the detail page.
func (h *CommentHandler) RedirectToDetail(c *gin.Context) {
	c.Redirect(http.StatusFound, detailPath(c.Param("id")))
}
