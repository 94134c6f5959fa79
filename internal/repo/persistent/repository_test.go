package persistent

import (
	"fmt"
	"testing"
	"time"

	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Each test gets its own named in-memory database so gorm's connection pool
// always sees the same schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func createWorkAt(t *testing.T, db *gorm.DB, title string, createdAt time.Time, categoryID *string) *models.Work {
	t.Helper()

	work := &models.Work{
		Title:      title,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(work).Error)
	return work
}

func TestWorkRepository_Neighbors(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	workA := createWorkAt(t, db, "A", base, nil)
	workB := createWorkAt(t, db, "B", base.Add(time.Hour), nil)
	workC := createWorkAt(t, db, "C", base.Add(2*time.Hour), nil)

	prev, err := repo.Previous(workB)
	assert.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, workA.ID, prev.ID)

	next, err := repo.Next(workB)
	assert.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, workC.ID, next.ID)
}

func TestWorkRepository_Neighbors_Boundaries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := createWorkAt(t, db, "oldest", base, nil)
	newest := createWorkAt(t, db, "newest", base.Add(time.Hour), nil)

	prev, err := repo.Previous(oldest)
	assert.NoError(t, err)
	assert.Nil(t, prev)

	next, err := repo.Next(newest)
	assert.NoError(t, err)
	assert.Nil(t, next)
}

func TestWorkRepository_Neighbors_SkipsNothingBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	workA := createWorkAt(t, db, "A", base, nil)
	workB := createWorkAt(t, db, "B", base.Add(time.Minute), nil)

	// Adjacent pair: each resolves the other
	next, err := repo.Next(workA)
	assert.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, workB.ID, next.ID)

	prev, err := repo.Previous(workB)
	assert.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, workA.ID, prev.ID)
}

func TestWorkRepository_List_DefaultOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	createWorkAt(t, db, "first", base, nil)
	createWorkAt(t, db, "second", base.Add(time.Hour), nil)
	createWorkAt(t, db, "third", base.Add(2*time.Hour), nil)

	works, err := repo.List("")
	assert.NoError(t, err)
	require.Len(t, works, 3)
	assert.Equal(t, "third", works[0].Title)
	assert.Equal(t, "second", works[1].Title)
	assert.Equal(t, "first", works[2].Title)
}

func TestWorkRepository_List_CategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkRepository(db)

	category := &models.Category{Name: "Web Design"}
	require.NoError(t, db.Create(category).Error)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	createWorkAt(t, db, "in-category", base, &category.ID)
	createWorkAt(t, db, "uncategorized", base.Add(time.Hour), nil)

	works, err := repo.List(category.ID)
	assert.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, "in-category", works[0].Title)
}

func TestWorkRepository_Delete_CascadesOwnedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	doomed := createWorkAt(t, db, "doomed", base, nil)
	survivor := createWorkAt(t, db, "survivor", base.Add(time.Hour), nil)

	for _, workID := range []string{doomed.ID, survivor.ID} {
		require.NoError(t, db.Create(&models.WorkImage{WorkID: workID, ImageURL: "http://example.com/a.jpg"}).Error)
		require.NoError(t, db.Create(&models.Comment{WorkID: workID, AuthorName: "x", Password: "p", Content: "hi"}).Error)
		require.NoError(t, db.Create(&models.Like{WorkID: workID}).Error)
	}

	require.NoError(t, repo.Delete(doomed.ID))

	var workCount, imageCount, commentCount, likeCount int64
	db.Model(&models.Work{}).Count(&workCount)
	db.Model(&models.WorkImage{}).Count(&imageCount)
	db.Model(&models.Comment{}).Count(&commentCount)
	db.Model(&models.Like{}).Count(&likeCount)

	// Only the survivor's rows remain
	assert.Equal(t, int64(1), workCount)
	assert.Equal(t, int64(1), imageCount)
	assert.Equal(t, int64(1), commentCount)
	assert.Equal(t, int64(1), likeCount)

	var remaining models.Comment
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, survivor.ID, remaining.WorkID)
}

func TestCategoryRepository_Delete_WorksSurvive(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	workRepo := NewWorkRepository(db)

	category := &models.Category{Name: "Illustration"}
	require.NoError(t, db.Create(category).Error)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	work := createWorkAt(t, db, "kept", base, &category.ID)

	require.NoError(t, categoryRepo.Delete(category.ID))

	got, err := workRepo.GetByID(work.ID)
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CategoryID)

	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	assert.Equal(t, int64(0), categoryCount)
}

func TestCategoryRepository_List_OrderAscending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	require.NoError(t, db.Create(&models.Category{Name: "second", Order: 2}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "first", Order: 1}).Error)

	categories, err := repo.List()
	assert.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "first", categories[0].Name)
	assert.Equal(t, "second", categories[1].Name)
}

func TestCommentRepository_ListByWork_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	work := createWorkAt(t, db, "W", base, nil)

	older := &models.Comment{WorkID: work.ID, AuthorName: "a", Password: "p", Content: "older", CreatedAt: base.Add(time.Minute)}
	newer := &models.Comment{WorkID: work.ID, AuthorName: "b", Password: "p", Content: "newer", CreatedAt: base.Add(2 * time.Minute)}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	comments, err := repo.ListByWork(work.ID)
	assert.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Content)
	assert.Equal(t, "older", comments[1].Content)
}

func TestCommentRepository_GetByID_WrongWork(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	workA := createWorkAt(t, db, "A", base, nil)
	workB := createWorkAt(t, db, "B", base.Add(time.Hour), nil)

	comment := &models.Comment{WorkID: workA.ID, AuthorName: "a", Password: "p", Content: "hi"}
	require.NoError(t, db.Create(comment).Error)

	got, err := repo.GetByID(workB.ID, comment.ID)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestLikeRepository_SequentialCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	work := createWorkAt(t, db, "liked", base, nil)
	other := createWorkAt(t, db, "other", base.Add(time.Hour), nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(work.ID))
	}

	count, err := repo.CountByWork(work.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)

	otherCount, err := repo.CountByWork(other.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), otherCount)
}

func TestSettingsRepository_SingleRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)

	// Empty store reads as absent, not as an error
	settings, err := repo.GetSiteSettings()
	assert.NoError(t, err)
	assert.Nil(t, settings)

	require.NoError(t, repo.SaveSiteSettings(&models.SiteSettings{HeroTitle: "Hello"}))
	require.NoError(t, repo.SaveSiteSettings(&models.SiteSettings{HeroTitle: "Hello again"}))

	var count int64
	db.Model(&models.SiteSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)

	settings, err = repo.GetSiteSettings()
	assert.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Hello again", settings.HeroTitle)
}

func TestSettingsRepository_ProfileSingleRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)

	require.NoError(t, repo.SaveProfile(&models.Profile{Name: "Lee"}))
	require.NoError(t, repo.SaveProfile(&models.Profile{Name: "Lee Sanbang"}))

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.Equal(t, int64(1), count)

	profile, err := repo.GetProfile()
	assert.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Lee Sanbang", profile.Name)
}

func TestSocialLinkRepository_ListOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSocialLinkRepository(db)

	require.NoError(t, repo.Create(&models.SocialLink{Platform: "Twitter", URL: "https://twitter.com/x", Order: 2}))
	require.NoError(t, repo.Create(&models.SocialLink{Platform: "GitHub", URL: "https://github.com/x", Order: 1}))

	links, err := repo.List()
	assert.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "GitHub", links[0].Platform)
}

func TestWorkImageRepository_OrderedWithinWork(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkImageRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	work := createWorkAt(t, db, "gallery", base, nil)

	require.NoError(t, repo.Create(&models.WorkImage{WorkID: work.ID, ImageURL: "http://example.com/2.jpg", Order: 2}))
	require.NoError(t, repo.Create(&models.WorkImage{WorkID: work.ID, ImageURL: "http://example.com/1.jpg", Order: 1}))

	images, err := repo.ListByWork(work.ID)
	assert.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "http://example.com/1.jpg", images[0].ImageURL)
	assert.Equal(t, "http://example.com/2.jpg", images[1].ImageURL)
}
