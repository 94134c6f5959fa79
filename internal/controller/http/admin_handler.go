package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/usecase"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the operator surface: a login screen, a dashboard
// shell and the JSON API the dashboard drives.
type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       log,
	}
}

func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{})
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Operator login
// @Description  Verifies the operator credentials and sets the admin session cookie.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/api/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.adminUseCase.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		h.logger.Error("Failed to log in admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.SetCookie(middleware.AdminTokenCookie, token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type SettingsRequest struct {
	HeroTitle       string `json:"hero_title" binding:"required"`
	HeroDescription string `json:"hero_description"`
	ShortIntro      string `json:"short_intro"`
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.adminUseCase.GetSiteSettings()
	if err != nil {
		h.logger.Error("Failed to load site settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettings godoc
// @Summary      Save site settings
// @Description  Creates or updates the single site settings row.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        settings body SettingsRequest true "Settings"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/api/settings [put]
func (h *AdminHandler) SaveSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.adminUseCase.SaveSiteSettings(req.HeroTitle, req.HeroDescription, req.ShortIntro)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Hero title is required"})
			return
		}
		h.logger.Error("Failed to save site settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) GetProfile(c *gin.Context) {
	profile, err := h.adminUseCase.GetProfile()
	if err != nil {
		h.logger.Error("Failed to load profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile accepts a multipart form so the photo can ride along with the
// text fields.
func (h *AdminHandler) SaveProfile(c *gin.Context) {
	name := c.PostForm("name")
	bio := c.PostForm("bio")
	email := c.PostForm("email")

	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}

	profile, err := h.adminUseCase.SaveProfile(name, bio, email, photo)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		h.logger.Error("Failed to save profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Order    int    `json:"order"`
}

func (h *AdminHandler) ListSocialLinks(c *gin.Context) {
	links, err := h.adminUseCase.ListSocialLinks()
	if err != nil {
		h.logger.Error("Failed to list social links: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list social links"})
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *AdminHandler) CreateSocialLink(c *gin.Context) {
	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.adminUseCase.CreateSocialLink(req.Platform, req.URL, req.Order)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Platform and URL are required"})
			return
		}
		h.logger.Error("Failed to create social link: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create social link"})
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *AdminHandler) UpdateSocialLink(c *gin.Context) {
	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.adminUseCase.UpdateSocialLink(c.Param("id"), req.Platform, req.URL, req.Order)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Platform and URL are required"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *AdminHandler) DeleteSocialLink(c *gin.Context) {
	if err := h.adminUseCase.DeleteSocialLink(c.Param("id")); err != nil {
		h.logger.Error("Failed to delete social link: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete social link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.adminUseCase.ListCategories()
	if err != nil {
		h.logger.Error("Failed to list categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.adminUseCase.CreateCategory(req.Name, req.Order)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		h.logger.Error("Failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.adminUseCase.UpdateCategory(c.Param("id"), req.Name, req.Order)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category; its works stay and become
// uncategorized.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.adminUseCase.DeleteCategory(c.Param("id")); err != nil {
		h.logger.Error("Failed to delete category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminHandler) ListWorks(c *gin.Context) {
	works, err := h.adminUseCase.ListWorks()
	if err != nil {
		h.logger.Error("Failed to list works: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list works"})
		return
	}
	c.JSON(http.StatusOK, works)
}

type CreateWorkRequest struct {
	Title        string `form:"title" binding:"required"`
	Description  string `form:"description"`
	ExternalLink string `form:"external_link"`
	CategoryID   string `form:"category_id"`
}

// CreateWork godoc
// @Summary      Create a work
// @Description  Creates a portfolio work with an optional thumbnail and gallery images.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Work title"
// @Param        description formData string false "Description"
// @Param        external_link formData string false "External link"
// @Param        category_id formData string false "Category ID"
// @Param        thumbnail formData file false "Thumbnail image"
// @Param        images formData file false "Gallery images (multiple allowed)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/api/works [post]
func (h *AdminHandler) CreateWork(c *gin.Context) {
	var req CreateWorkRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		thumbnail = nil
	}

	var gallery []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		gallery = form.File["images"]
	}

	work, err := h.adminUseCase.CreateWork(req.Title, req.Description, req.ExternalLink, req.CategoryID, thumbnail, gallery)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create work: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work"})
		return
	}
	c.JSON(http.StatusCreated, work)
}

type UpdateWorkRequest struct {
	Title        *string `form:"title"`
	Description  *string `form:"description"`
	ExternalLink *string `form:"external_link"`
	CategoryID   *string `form:"category_id"`
}

// UpdateWork applies a partial update; only the fields present in the form
// change. An empty category_id clears the category.
func (h *AdminHandler) UpdateWork(c *gin.Context) {
	var req UpdateWorkRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		thumbnail = nil
	}

	work, err := h.adminUseCase.UpdateWork(c.Param("id"), req.Title, req.Description, req.ExternalLink, req.CategoryID, thumbnail)
	if err != nil {
		if errors.Is(err, usecase.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
			return
		}
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update work: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update work"})
		return
	}
	c.JSON(http.StatusOK, work)
}

// DeleteWork godoc
// @Summary      Delete a work
// @Description  Removes a work together with its gallery images, comments and likes.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/api/works/{id} [delete]
func (h *AdminHandler) DeleteWork(c *gin.Context) {
	if err := h.adminUseCase.DeleteWork(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
			return
		}
		h.logger.Error("Failed to delete work: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete work"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminHandler) WorkStats(c *gin.Context) {
	likes, comments, err := h.adminUseCase.WorkStats(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
			return
		}
		h.logger.Error("Failed to load work stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load work stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"like_count": likes, "comment_count": comments})
}

func (h *AdminHandler) AddWorkImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	order := 0
	if v := c.PostForm("order"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			order = n
		}
	}

	image, err := h.adminUseCase.AddWorkImage(c.Param("id"), file, order)
	if err != nil {
		if errors.Is(err, usecase.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
			return
		}
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to add work image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *AdminHandler) DeleteWorkImage(c *gin.Context) {
	if err := h.adminUseCase.DeleteWorkImage(c.Param("id"), c.Param("imageID")); err != nil {
		if errors.Is(err, usecase.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		h.logger.Error("Failed to delete work image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type ReorderRequest struct {
	ImageIDs []string `json:"image_ids" binding:"required"`
}

func (h *AdminHandler) ReorderWorkImages(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminUseCase.ReorderWorkImages(c.Param("id"), req.ImageIDs); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to reorder work images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder images"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminHandler) ListComments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	comments, err := h.adminUseCase.ListComments(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list comments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// RemoveComment is the operator-side removal, no visitor password involved.
func (h *AdminHandler) RemoveComment(c *gin.Context) {
	if err := h.adminUseCase.RemoveComment(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		h.logger.Error("Failed to remove comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
