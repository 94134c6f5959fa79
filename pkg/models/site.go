package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings holds the hero copy shown on the home page. The site uses a
// single logical row; the admin surface refuses to create a second one.
type SiteSettings struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	HeroTitle       string    `gorm:"type:varchar(200);not null" json:"hero_title"`
	HeroDescription string    `gorm:"type:text" json:"hero_description"`
	ShortIntro      string    `gorm:"type:text" json:"short_intro"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// Profile is the owner's bio for the about page. Single logical row, same as
// SiteSettings.
type Profile struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	PhotoURL  string    `gorm:"type:varchar(500)" json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type SocialLink struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Platform  string    `gorm:"type:varchar(50);not null" json:"platform"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
	Order     int       `gorm:"default:0;index" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
