package http

import (
	"mime/multipart"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/usecase"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.html")
	return r
}

// MockSiteUseCase is a mock implementation of SiteUseCase
type MockSiteUseCase struct {
	mock.Mock
}

func (m *MockSiteUseCase) HomePage() (*models.SiteSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SiteSettings), args.Error(1)
}

func (m *MockSiteUseCase) AboutPage() (*models.Profile, []*models.SocialLink, error) {
	args := m.Called()
	var profile *models.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*models.Profile)
	}
	var links []*models.SocialLink
	if args.Get(1) != nil {
		links = args.Get(1).([]*models.SocialLink)
	}
	return profile, links, args.Error(2)
}

var _ usecase.SiteUseCase = (*MockSiteUseCase)(nil)

// MockWorkUseCase is a mock implementation of WorkUseCase
type MockWorkUseCase struct {
	mock.Mock
}

func (m *MockWorkUseCase) ListWorks(categoryID string) ([]*models.Work, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Work), args.Error(1)
}

func (m *MockWorkUseCase) Categories() ([]*models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockWorkUseCase) WorkDetail(id string) (*usecase.WorkDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.WorkDetail), args.Error(1)
}

var _ usecase.WorkUseCase = (*MockWorkUseCase)(nil)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) AddComment(workID, authorName, password, content string) (*models.Comment, error) {
	args := m.Called(workID, authorName, password, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(workID, commentID, password string) error {
	args := m.Called(workID, commentID, password)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

// MockLikeUseCase is a mock implementation of LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) LikeWork(workID string) (int64, error) {
	args := m.Called(workID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

// MockAdminUseCase is a mock implementation of AdminUseCase
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAdminUseCase) GetSiteSettings() (*models.SiteSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SiteSettings), args.Error(1)
}

func (m *MockAdminUseCase) SaveSiteSettings(heroTitle, heroDescription, shortIntro string) (*models.SiteSettings, error) {
	args := m.Called(heroTitle, heroDescription, shortIntro)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SiteSettings), args.Error(1)
}

func (m *MockAdminUseCase) GetProfile() (*models.Profile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAdminUseCase) SaveProfile(name, bio, email string, photo *multipart.FileHeader) (*models.Profile, error) {
	args := m.Called(name, bio, email, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAdminUseCase) ListSocialLinks() ([]*models.SocialLink, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocialLink), args.Error(1)
}

func (m *MockAdminUseCase) CreateSocialLink(platform, linkURL string, order int) (*models.SocialLink, error) {
	args := m.Called(platform, linkURL, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SocialLink), args.Error(1)
}

func (m *MockAdminUseCase) UpdateSocialLink(id, platform, linkURL string, order int) (*models.SocialLink, error) {
	args := m.Called(id, platform, linkURL, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SocialLink), args.Error(1)
}

func (m *MockAdminUseCase) DeleteSocialLink(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminUseCase) ListCategories() ([]*models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockAdminUseCase) CreateCategory(name string, order int) (*models.Category, error) {
	args := m.Called(name, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockAdminUseCase) UpdateCategory(id, name string, order int) (*models.Category, error) {
	args := m.Called(id, name, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockAdminUseCase) DeleteCategory(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminUseCase) ListWorks() ([]*models.Work, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Work), args.Error(1)
}

func (m *MockAdminUseCase) CreateWork(title, description, externalLink, categoryID string, thumbnail *multipart.FileHeader, images []*multipart.FileHeader) (*models.Work, error) {
	args := m.Called(title, description, externalLink, categoryID, thumbnail, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Work), args.Error(1)
}

func (m *MockAdminUseCase) UpdateWork(id string, title, description, externalLink, categoryID *string, thumbnail *multipart.FileHeader) (*models.Work, error) {
	args := m.Called(id, title, description, externalLink, categoryID, thumbnail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Work), args.Error(1)
}

func (m *MockAdminUseCase) DeleteWork(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminUseCase) WorkStats(workID string) (int64, int64, error) {
	args := m.Called(workID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminUseCase) AddWorkImage(workID string, file *multipart.FileHeader, order int) (*models.WorkImage, error) {
	args := m.Called(workID, file, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkImage), args.Error(1)
}

func (m *MockAdminUseCase) DeleteWorkImage(workID, imageID string) error {
	args := m.Called(workID, imageID)
	return args.Error(0)
}

func (m *MockAdminUseCase) ReorderWorkImages(workID string, imageIDs []string) error {
	args := m.Called(workID, imageIDs)
	return args.Error(0)
}

func (m *MockAdminUseCase) ListComments(limit, offset int) ([]*models.Comment, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockAdminUseCase) RemoveComment(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.AdminUseCase = (*MockAdminUseCase)(nil)
