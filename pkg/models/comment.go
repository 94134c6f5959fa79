package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a visitor comment on a work. The password authorizes deletion by
// the same visitor and is never rendered or editable after creation.
type Comment struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	WorkID     string    `gorm:"type:uuid;not null;index" json:"work_id"`
	AuthorName string    `gorm:"type:varchar(50);not null" json:"author_name"`
	Password   string    `gorm:"type:varchar(128);not null" json:"-"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// Like is one anonymous like event. The like count of a work is the number of
// its rows; appends never race a read-modify-write.
type Like struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	WorkID    string    `gorm:"type:uuid;not null;index" json:"work_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
