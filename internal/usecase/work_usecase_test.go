package usecase

import (
	"testing"
	"time"

	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkDetail_AssemblesViewModel(t *testing.T) {
	db := newTestDB(t)
	workRepo, categoryRepo, commentRepo, likeRepo := newRepos(db)
	uc := NewWorkUseCase(workRepo, categoryRepo, commentRepo, likeRepo)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	workA := newWorkAt(t, db, "A", base)
	workB := newWorkAt(t, db, "B", base.Add(time.Hour))
	workC := newWorkAt(t, db, "C", base.Add(2*time.Hour))

	require.NoError(t, db.Create(&models.WorkImage{WorkID: workB.ID, ImageURL: "http://example.com/2.jpg", Order: 1}).Error)
	require.NoError(t, db.Create(&models.WorkImage{WorkID: workB.ID, ImageURL: "http://example.com/1.jpg", Order: 0}).Error)
	require.NoError(t, db.Create(&models.Comment{WorkID: workB.ID, AuthorName: "x", Password: "p", Content: "hi", CreatedAt: base}).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Like{WorkID: workB.ID}).Error)
	}

	detail, err := uc.WorkDetail(workB.ID)
	require.NoError(t, err)

	assert.Equal(t, workB.ID, detail.Work.ID)
	require.Len(t, detail.Images, 2)
	assert.Equal(t, "http://example.com/1.jpg", detail.Images[0].ImageURL)
	assert.Len(t, detail.Comments, 1)
	assert.Equal(t, int64(3), detail.LikeCount)
	require.NotNil(t, detail.PrevWork)
	assert.Equal(t, workA.ID, detail.PrevWork.ID)
	require.NotNil(t, detail.NextWork)
	assert.Equal(t, workC.ID, detail.NextWork.ID)
}

func TestWorkDetail_NotFound(t *testing.T) {
	db := newTestDB(t)
	workRepo, categoryRepo, commentRepo, likeRepo := newRepos(db)
	uc := NewWorkUseCase(workRepo, categoryRepo, commentRepo, likeRepo)

	detail, err := uc.WorkDetail("no-such-work")
	assert.ErrorIs(t, err, ErrWorkNotFound)
	assert.Nil(t, detail)
}

func TestListWorks_UnknownCategoryReturnsFullSet(t *testing.T) {
	db := newTestDB(t)
	workRepo, categoryRepo, commentRepo, likeRepo := newRepos(db)
	uc := NewWorkUseCase(workRepo, categoryRepo, commentRepo, likeRepo)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	newWorkAt(t, db, "A", base)
	newWorkAt(t, db, "B", base.Add(time.Hour))

	// A filter naming an unknown category behaves like no filter
	works, err := uc.ListWorks("does-not-exist")
	assert.NoError(t, err)
	assert.Len(t, works, 2)
}

func TestListWorks_KnownCategoryFilters(t *testing.T) {
	db := newTestDB(t)
	workRepo, categoryRepo, commentRepo, likeRepo := newRepos(db)
	uc := NewWorkUseCase(workRepo, categoryRepo, commentRepo, likeRepo)

	category := &models.Category{Name: "Photography"}
	require.NoError(t, db.Create(category).Error)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	work := &models.Work{Title: "tagged", CategoryID: &category.ID, CreatedAt: base}
	require.NoError(t, db.Create(work).Error)
	newWorkAt(t, db, "untagged", base.Add(time.Hour))

	works, err := uc.ListWorks(category.ID)
	assert.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, "tagged", works[0].Title)
}
