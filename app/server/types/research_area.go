package types

import (
	"time"

	"gilab-api/app/server/models"
)

type ResearchAreaCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"` // 缺省为 true
}

type ResearchAreaUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

type ResearchAreaResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    *string   `json:"parentId"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewResearchAreaResponse(area *models.ResearchArea) *ResearchAreaResponse {
	return &ResearchAreaResponse{
		ID:          area.ID,
		Name:        area.Name,
		Description: area.Description,
		ParentID:    area.ParentID,
		ImageURL:    area.ImageURL,
		Order:       area.DisplayOrder,
		IsActive:    area.IsActive,
		CreatedAt:   area.CreatedAt,
		UpdatedAt:   area.UpdatedAt,
	}
}
