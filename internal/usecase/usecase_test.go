package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/aszxazs-a11y/aboutleesanbang/internal/repo/persistent"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:usecase_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newWorkAt(t *testing.T, db *gorm.DB, title string, createdAt time.Time) *models.Work {
	t.Helper()

	work := &models.Work{Title: title, CreatedAt: createdAt}
	require.NoError(t, db.Create(work).Error)
	return work
}

func newRepos(db *gorm.DB) (persistent.WorkRepository, persistent.CategoryRepository, persistent.CommentRepository, persistent.LikeRepository) {
	return persistent.NewWorkRepository(db),
		persistent.NewCategoryRepository(db),
		persistent.NewCommentRepository(db),
		persistent.NewLikeRepository(db)
}
