package usecase

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/repo/persistent"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/jwt"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminUseCase backs the administrative surface: operator login plus CRUD
// over everything the site displays. Comments and likes are read/remove only
// from here; visitors are the only writers of those.
type AdminUseCase interface {
	Login(username, password string) (string, error)

	GetSiteSettings() (*models.SiteSettings, error)
	SaveSiteSettings(heroTitle, heroDescription, shortIntro string) (*models.SiteSettings, error)
	GetProfile() (*models.Profile, error)
	SaveProfile(name, bio, email string, photo *multipart.FileHeader) (*models.Profile, error)

	ListSocialLinks() ([]*models.SocialLink, error)
	CreateSocialLink(platform, linkURL string, order int) (*models.SocialLink, error)
	UpdateSocialLink(id, platform, linkURL string, order int) (*models.SocialLink, error)
	DeleteSocialLink(id string) error

	ListCategories() ([]*models.Category, error)
	CreateCategory(name string, order int) (*models.Category, error)
	UpdateCategory(id, name string, order int) (*models.Category, error)
	DeleteCategory(id string) error

	ListWorks() ([]*models.Work, error)
	CreateWork(title, description, externalLink, categoryID string, thumbnail *multipart.FileHeader, images []*multipart.FileHeader) (*models.Work, error)
	UpdateWork(id string, title, description, externalLink, categoryID *string, thumbnail *multipart.FileHeader) (*models.Work, error)
	DeleteWork(id string) error
	WorkStats(workID string) (likeCount, commentCount int64, err error)

	AddWorkImage(workID string, file *multipart.FileHeader, order int) (*models.WorkImage, error)
	DeleteWorkImage(workID, imageID string) error
	ReorderWorkImages(workID string, imageIDs []string) error

	ListComments(limit, offset int) ([]*models.Comment, error)
	RemoveComment(id string) error
}

type adminUseCase struct {
	adminRepo      persistent.AdminUserRepository
	settingsRepo   persistent.SettingsRepository
	socialLinkRepo persistent.SocialLinkRepository
	categoryRepo   persistent.CategoryRepository
	workRepo       persistent.WorkRepository
	imageRepo      persistent.WorkImageRepository
	commentRepo    persistent.CommentRepository
	likeRepo       persistent.LikeRepository
	s3Client       *s3.Client
	jwtService     *jwt.Service
	logger         *logger.Logger
}

func NewAdminUseCase(
	adminRepo persistent.AdminUserRepository,
	settingsRepo persistent.SettingsRepository,
	socialLinkRepo persistent.SocialLinkRepository,
	categoryRepo persistent.CategoryRepository,
	workRepo persistent.WorkRepository,
	imageRepo persistent.WorkImageRepository,
	commentRepo persistent.CommentRepository,
	likeRepo persistent.LikeRepository,
	s3Client *s3.Client,
	jwtService *jwt.Service,
	log *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		adminRepo:      adminRepo,
		settingsRepo:   settingsRepo,
		socialLinkRepo: socialLinkRepo,
		categoryRepo:   categoryRepo,
		workRepo:       workRepo,
		imageRepo:      imageRepo,
		commentRepo:    commentRepo,
		likeRepo:       likeRepo,
		s3Client:       s3Client,
		jwtService:     jwtService,
		logger:         log,
	}
}

func (uc *adminUseCase) Login(username, password string) (string, error) {
	user, err := uc.adminRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "admin")
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Info("Admin %s logged in", username)
	return token, nil
}

func (uc *adminUseCase) GetSiteSettings() (*models.SiteSettings, error) {
	return uc.settingsRepo.GetSiteSettings()
}

func (uc *adminUseCase) SaveSiteSettings(heroTitle, heroDescription, shortIntro string) (*models.SiteSettings, error) {
	heroTitle = strings.TrimSpace(heroTitle)
	if heroTitle == "" {
		return nil, ErrValidation
	}

	settings := &models.SiteSettings{
		HeroTitle:       heroTitle,
		HeroDescription: heroDescription,
		ShortIntro:      shortIntro,
	}
	if err := uc.settingsRepo.SaveSiteSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to save site settings: %w", err)
	}
	return settings, nil
}

func (uc *adminUseCase) GetProfile() (*models.Profile, error) {
	return uc.settingsRepo.GetProfile()
}

func (uc *adminUseCase) SaveProfile(name, bio, email string, photo *multipart.FileHeader) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	profile := &models.Profile{
		Name:  name,
		Bio:   bio,
		Email: email,
	}

	existing, err := uc.settingsRepo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if existing != nil {
		profile.PhotoURL = existing.PhotoURL
	}

	if photo != nil {
		photoURL, err := uc.uploadImage("profile", photo)
		if err != nil {
			return nil, err
		}
		profile.PhotoURL = photoURL
	}

	if err := uc.settingsRepo.SaveProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

func (uc *adminUseCase) ListSocialLinks() ([]*models.SocialLink, error) {
	return uc.socialLinkRepo.List()
}

func (uc *adminUseCase) CreateSocialLink(platform, linkURL string, order int) (*models.SocialLink, error) {
	platform = strings.TrimSpace(platform)
	linkURL = strings.TrimSpace(linkURL)
	if platform == "" || linkURL == "" {
		return nil, ErrValidation
	}

	link := &models.SocialLink{Platform: platform, URL: linkURL, Order: order}
	if err := uc.socialLinkRepo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create social link: %w", err)
	}
	return link, nil
}

func (uc *adminUseCase) UpdateSocialLink(id, platform, linkURL string, order int) (*models.SocialLink, error) {
	link, err := uc.socialLinkRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load social link: %w", err)
	}

	link.Platform = strings.TrimSpace(platform)
	link.URL = strings.TrimSpace(linkURL)
	link.Order = order
	if link.Platform == "" || link.URL == "" {
		return nil, ErrValidation
	}

	if err := uc.socialLinkRepo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update social link: %w", err)
	}
	return link, nil
}

func (uc *adminUseCase) DeleteSocialLink(id string) error {
	return uc.socialLinkRepo.Delete(id)
}

func (uc *adminUseCase) ListCategories() ([]*models.Category, error) {
	return uc.categoryRepo.List()
}

func (uc *adminUseCase) CreateCategory(name string, order int) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	category := &models.Category{Name: name, Order: order}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (uc *adminUseCase) UpdateCategory(id, name string, order int) (*models.Category, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	category.Name = strings.TrimSpace(name)
	category.Order = order
	if category.Name == "" {
		return nil, ErrValidation
	}

	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes the category only. Its works stay and lose the
// reference.
func (uc *adminUseCase) DeleteCategory(id string) error {
	return uc.categoryRepo.Delete(id)
}

func (uc *adminUseCase) ListWorks() ([]*models.Work, error) {
	return uc.workRepo.List("")
}

func (uc *adminUseCase) CreateWork(title, description, externalLink, categoryID string, thumbnail *multipart.FileHeader, images []*multipart.FileHeader) (*models.Work, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrValidation
	}

	work := &models.Work{
		Title:        title,
		Description:  description,
		ExternalLink: externalLink,
	}
	if categoryID != "" {
		work.CategoryID = &categoryID
	}

	if thumbnail != nil {
		thumbnailURL, err := uc.uploadImage("works/thumbnails", thumbnail)
		if err != nil {
			return nil, err
		}
		work.ThumbnailURL = thumbnailURL
	}

	for i, file := range images {
		imageURL, err := uc.uploadImage("works/images", file)
		if err != nil {
			return nil, err
		}
		work.Images = append(work.Images, models.WorkImage{
			ImageURL: imageURL,
			Order:    i,
		})
	}

	if err := uc.workRepo.Create(work); err != nil {
		return nil, fmt.Errorf("failed to create work: %w", err)
	}

	uc.logger.Info("Work %s created: %s", work.ID, work.Title)
	return work, nil
}

func (uc *adminUseCase) UpdateWork(id string, title, description, externalLink, categoryID *string, thumbnail *multipart.FileHeader) (*models.Work, error) {
	work, err := uc.workRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to load work: %w", err)
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, ErrValidation
		}
		work.Title = trimmed
	}
	if description != nil {
		work.Description = *description
	}
	if externalLink != nil {
		work.ExternalLink = *externalLink
	}
	if categoryID != nil {
		if *categoryID == "" {
			work.CategoryID = nil
			work.Category = nil
		} else {
			work.CategoryID = categoryID
		}
	}

	if thumbnail != nil {
		thumbnailURL, err := uc.uploadImage("works/thumbnails", thumbnail)
		if err != nil {
			return nil, err
		}
		work.ThumbnailURL = thumbnailURL
	}

	if err := uc.workRepo.Update(work); err != nil {
		return nil, fmt.Errorf("failed to update work: %w", err)
	}
	return work, nil
}

func (uc *adminUseCase) DeleteWork(id string) error {
	exists, err := uc.workRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check work: %w", err)
	}
	if !exists {
		return ErrWorkNotFound
	}

	if err := uc.workRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}

	uc.logger.Info("Work %s deleted", id)
	return nil
}

func (uc *adminUseCase) WorkStats(workID string) (int64, int64, error) {
	exists, err := uc.workRepo.Exists(workID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to check work: %w", err)
	}
	if !exists {
		return 0, 0, ErrWorkNotFound
	}

	likeCount, err := uc.likeRepo.CountByWork(workID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	comments, err := uc.commentRepo.ListByWork(workID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load comments: %w", err)
	}

	return likeCount, int64(len(comments)), nil
}

func (uc *adminUseCase) AddWorkImage(workID string, file *multipart.FileHeader, order int) (*models.WorkImage, error) {
	exists, err := uc.workRepo.Exists(workID)
	if err != nil {
		return nil, fmt.Errorf("failed to check work: %w", err)
	}
	if !exists {
		return nil, ErrWorkNotFound
	}

	imageURL, err := uc.uploadImage("works/images", file)
	if err != nil {
		return nil, err
	}

	image := &models.WorkImage{WorkID: workID, ImageURL: imageURL, Order: order}
	if err := uc.imageRepo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to create work image: %w", err)
	}
	return image, nil
}

func (uc *adminUseCase) DeleteWorkImage(workID, imageID string) error {
	image, err := uc.imageRepo.GetByID(imageID)
	if err != nil || image.WorkID != workID {
		return ErrWorkNotFound
	}

	if err := uc.imageRepo.Delete(imageID); err != nil {
		return fmt.Errorf("failed to delete work image: %w", err)
	}

	// Best-effort bucket cleanup; a stale object is not worth failing the
	// request over.
	if key := mediaKeyFromURL(image.ImageURL); key != "" {
		if err := uc.s3Client.DeleteFile(key); err != nil {
			uc.logger.Warn("Failed to delete media object %s: %v", key, err)
		}
	}
	return nil
}

func (uc *adminUseCase) ReorderWorkImages(workID string, imageIDs []string) error {
	images, err := uc.imageRepo.ListByWork(workID)
	if err != nil {
		return fmt.Errorf("failed to load work images: %w", err)
	}

	owned := make(map[string]bool, len(images))
	for _, image := range images {
		owned[image.ID] = true
	}

	for position, id := range imageIDs {
		if !owned[id] {
			continue
		}
		if err := uc.imageRepo.UpdateOrder(id, position); err != nil {
			return fmt.Errorf("failed to reorder work image: %w", err)
		}
	}
	return nil
}

func (uc *adminUseCase) ListComments(limit, offset int) ([]*models.Comment, error) {
	return uc.commentRepo.List(limit, offset)
}

// RemoveComment is the operator-side removal; no password check applies.
func (uc *adminUseCase) RemoveComment(id string) error {
	if _, err := uc.commentRepo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to load comment: %w", err)
	}
	return uc.commentRepo.Delete(id)
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

func (uc *adminUseCase) uploadImage(prefix string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("%w: unsupported image format %s", ErrValidation, ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
	imageURL, err := uc.s3Client.UploadFile(key, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return imageURL, nil
}

// mediaKeyFromURL recovers the object key from a stored media URL. Handles
// both path-style (MinIO) and virtual-hosted (AWS) URL shapes.
func mediaKeyFromURL(mediaURL string) string {
	parsed, err := url.Parse(mediaURL)
	if err != nil {
		return ""
	}
	path := strings.TrimPrefix(parsed.Path, "/")
	if path == "" {
		return ""
	}
	if !strings.Contains(parsed.Host, "amazonaws.com") {
		// Path-style: first segment is the bucket
		if idx := strings.Index(path, "/"); idx >= 0 {
			return path[idx+1:]
		}
		return ""
	}
	return path
}
