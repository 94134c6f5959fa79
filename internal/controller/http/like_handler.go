package http

import (
	"errors"
	"net/http"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/usecase"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, log *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      log,
	}
}

// Add godoc
// @Summary      Register a like
// @Description  Appends one like to the work and returns the new total. Every call counts once; there is no undo.
// @Tags         likes
// @Produce      json
// @Param        id path string true "Work ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /works/{id}/like/ [post]
func (h *LikeHandler) Add(c *gin.Context) {
	count, err := h.likeUseCase.LikeWork(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
			return
		}
		h.logger.Error("Failed to register like: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"like_count": count,
	})
}

// MethodNotAllowed answers non-POST hits on the like endpoint without
// mutating anything.
func (h *LikeHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Only POST requests are allowed"})
}
