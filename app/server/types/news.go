package types

import (
	"time"

	"gilab-api/app/server/models"
)

type NewsCreateRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Summary  *string `json:"summary"`
	ImageURL *string `json:"imageUrl"`
}

type NewsUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary"`
	ImageURL *string `json:"imageUrl"`
}

type NewsResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	AuthorID    string    `json:"authorId"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewNewsResponse(news *models.News) *NewsResponse {
	return &NewsResponse{
		ID:          news.ID,
		Title:       news.Title,
		Content:     news.Content,
		Summary:     news.Summary,
		ImageURL:    news.ImageURL,
		PublishedAt: news.PublishedAt,
		AuthorID:    news.AuthorID,
		IsPublished: news.IsPublished,
		CreatedAt:   news.CreatedAt,
		UpdatedAt:   news.UpdatedAt,
	}
}
