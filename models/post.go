package models

import (
	"time"

	"gorm.io/gorm"
)

type Visibility string

const (
	VisibilityFree    Visibility = "free"
	VisibilityPremium Visibility = "premium"
)

type Post struct {
	ID         string         `json:"id" gorm:"type:uuid;primarykey"`
	AuthorID   string         `json:"author_id" gorm:"type:uuid;index;not null"`
	Author     User           `json:"author" gorm:"foreignKey:AuthorID"`
	Title      string         `json:"title" gorm:"not null"`
	Content    string         `json:"content" gorm:"not null"`
	CoverImage *string        `json:"cover_image,omitempty"`
	Visibility Visibility     `json:"visibility" gorm:"not null;default:'free'"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
