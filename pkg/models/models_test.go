package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWork_BeforeCreate(t *testing.T) {
	work := &Work{
		Title:       "Test Work",
		Description: "A test work",
	}

	// BeforeCreate should set ID if empty
	err := work.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, work.ID)
}

func TestWork_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-work-id"
	work := &Work{
		ID:    existingID,
		Title: "Test Work",
	}

	err := work.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, work.ID)
}

func TestComment_BeforeCreate(t *testing.T) {
	comment := &Comment{
		WorkID:     "work-123",
		AuthorName: "visitor",
		Password:   "secret",
		Content:    "nice work",
	}

	err := comment.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
}

func TestLike_BeforeCreate(t *testing.T) {
	like := &Like{WorkID: "work-123"}

	err := like.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, like.ID)
}

func TestWorkImage_BeforeCreate(t *testing.T) {
	image := &WorkImage{
		WorkID:   "work-123",
		ImageURL: "http://example.com/image.jpg",
	}

	err := image.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, image.ID)
}

func TestCategory_BeforeCreate(t *testing.T) {
	category := &Category{Name: "Web Design"}

	err := category.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, category.ID)
}

func TestSiteSettings_BeforeCreate(t *testing.T) {
	settings := &SiteSettings{HeroTitle: "Hello"}

	err := settings.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, settings.ID)
}

func TestAdminUser_BeforeCreate(t *testing.T) {
	user := &AdminUser{Username: "admin", Password: "hashed"}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}
