package types

import (
	"time"

	"gilab-api/app/server/models"
)

type ResearchProjectCreateRequest struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Category       string `json:"category" validate:"required"`
	Date           string `json:"date" validate:"required"`
	LeadResearcher string `json:"leadResearcher" validate:"required"`
	ImageURL       string `json:"imageUrl" validate:"required"`
	Order          *int   `json:"order"`
}

type ResearchProjectResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Date           string    `json:"date"`
	LeadResearcher string    `json:"leadResearcher"`
	ImageURL       string    `json:"imageUrl"`
	Order          int       `json:"order"`
	AuthorID       *string   `json:"authorId"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewResearchProjectResponse(project *models.ResearchProject) *ResearchProjectResponse {
	return &ResearchProjectResponse{
		ID:             project.ID,
		Title:          project.Title,
		Description:    project.Description,
		Category:       project.Category,
		Date:           project.Date,
		LeadResearcher: project.LeadResearcher,
		ImageURL:       project.ImageURL,
		Order:          project.DisplayOrder,
		AuthorID:       project.AuthorID,
		CreatedAt:      project.CreatedAt,
	}
}
