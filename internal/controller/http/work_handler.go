package http

import (
	"errors"
	"net/http"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/usecase"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/flash"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WorkHandler struct {
	workUseCase usecase.WorkUseCase
	flash       *flash.Store
	logger      *logger.Logger
}

func NewWorkHandler(workUseCase usecase.WorkUseCase, flashStore *flash.Store, log *logger.Logger) *WorkHandler {
	return &WorkHandler{
		workUseCase: workUseCase,
		flash:       flashStore,
		logger:      log,
	}
}

// List renders the work listing, optionally filtered by ?category=.
func (h *WorkHandler) List(c *gin.Context) {
	categoryID := c.Query("category")

	works, err := h.workUseCase.ListWorks(categoryID)
	if err != nil {
		h.logger.Error("Failed to list works: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong"})
		return
	}

	categories, err := h.workUseCase.Categories()
	if err != nil {
		h.logger.Error("Failed to list categories: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong"})
		return
	}

	c.HTML(http.StatusOK, "work_list.html", gin.H{
		"works":            works,
		"categories":       categories,
		"current_category": categoryID,
		"flashes":          h.flash.Take(c),
	})
}

// Detail renders one work with its gallery, comments, like count and
// prev/next navigation.
func (h *WorkHandler) Detail(c *gin.Context) {
	detail, err := h.workUseCase.WorkDetail(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrWorkNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{})
			return
		}
		h.logger.Error("Failed to load work detail: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong"})
		return
	}

	c.HTML(http.StatusOK, "work_detail.html", gin.H{
		"work":       detail.Work,
		"images":     detail.Images,
		"comments":   detail.Comments,
		"like_count": detail.LikeCount,
		"prev_work":  detail.PrevWork,
		"next_work":  detail.NextWork,
		"flashes":    h.flash.Take(c),
	})
}
