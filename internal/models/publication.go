package models

import "time"

type Publication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title     string `gorm:"size:150;not null" json:"title"`
	Body      string `gorm:"type:text" json:"body"`
	ImagePath string `gorm:"size:255" json:"image_path"`

	LikeCount int `gorm:"-" json:"like_count"`

	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PublicationLike struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PublicationID uint `gorm:"uniqueIndex:idx_publication_like,priority:1" json:"publication_id"`
	UserID        uint `gorm:"uniqueIndex:idx_publication_like,priority:2" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
