package http

import (
	"net/http"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/usecase"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/flash"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	siteUseCase usecase.SiteUseCase
	flash       *flash.Store
	logger      *logger.Logger
}

func NewSiteHandler(siteUseCase usecase.SiteUseCase, flashStore *flash.Store, log *logger.Logger) *SiteHandler {
	return &SiteHandler{
		siteUseCase: siteUseCase,
		flash:       flashStore,
		logger:      log,
	}
}

// Home renders the landing page. A site without configured settings renders
// the empty state rather than failing.
func (h *SiteHandler) Home(c *gin.Context) {
	settings, err := h.siteUseCase.HomePage()
	if err != nil {
		h.logger.Error("Failed to load home page: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong"})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"settings": settings,
		"flashes":  h.flash.Take(c),
	})
}

func (h *SiteHandler) About(c *gin.Context) {
	profile, links, err := h.siteUseCase.AboutPage()
	if err != nil {
		h.logger.Error("Failed to load about page: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong"})
		return
	}

	c.HTML(http.StatusOK, "about.html", gin.H{
		"profile":      profile,
		"social_links": links,
		"flashes":      h.flash.Take(c),
	})
}
