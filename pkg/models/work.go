package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Order     int       `gorm:"default:0;index" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// Work is a portfolio entry. It owns its images, comments and likes (all
// cascade on delete) and weakly references a category: deleting the category
// leaves the work in place with an empty reference.
type Work struct {
	ID           string      `gorm:"type:uuid;primary_key" json:"id"`
	Title        string      `gorm:"type:varchar(200);not null" json:"title"`
	Description  string      `gorm:"type:text" json:"description"`
	ThumbnailURL string      `gorm:"type:varchar(500)" json:"thumbnail_url"`
	ExternalLink string      `gorm:"type:varchar(500)" json:"external_link"`
	CategoryID   *string     `gorm:"type:uuid;index" json:"category_id"`
	Category     *Category   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Images       []WorkImage `gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (w *Work) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

type WorkImage struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	WorkID    string    `gorm:"type:uuid;not null;index" json:"work_id"`
	ImageURL  string    `gorm:"type:varchar(500);not null" json:"image_url"`
	Order     int       `gorm:"default:0;index" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *WorkImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
