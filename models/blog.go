package models

import (
	"time"

	"gorm.io/gorm"
)

type Blog struct {
	gorm.Model
	PublicId    string    `gorm:"uniqueIndex" json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorEmail string    `gorm:"index" json:"authorEmail"`
	AuthorName  string    `json:"authorName"`
	PublishedAt time.Time `json:"publishedAt"`
	TotalVisits int64     `json:"totalVisits"`
}
