package models

import "time"

type News struct {
	Base

	Title   string `gorm:"column:title;type:text"`
	Content string `gorm:"column:content;type:text"`
	Summary string `gorm:"column:summary;type:text"`

	ImageURL    string    `gorm:"column:image_url;type:text"`
	PublishedAt time.Time `gorm:"column:published_at"`
	IsPublished bool      `gorm:"column:is_published"`

	// 创建者（用户）
	AuthorID string `gorm:"column:author_id;size:36;index"`
}
