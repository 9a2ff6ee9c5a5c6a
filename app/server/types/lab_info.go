package types

import (
	"time"

	"gilab-api/app/server/models"
)

type LabInfoUpsertRequest struct {
	LabName               string  `json:"labName" validate:"required"`
	PrincipalInvestigator string  `json:"principalInvestigator" validate:"required"`
	PiTitle               string  `json:"piTitle" validate:"required"`
	PiEmail               *string `json:"piEmail" validate:"omitempty,email"`
	PiPhone               *string `json:"piPhone"`
	PiPhoto               *string `json:"piPhoto"`
	PiBio                 *string `json:"piBio"`
	Description           *string `json:"description"`
	Address               string  `json:"address" validate:"required"`
	Latitude              *string `json:"latitude"`
	Longitude             *string `json:"longitude"`
	Building              *string `json:"building"`
	Room                  *string `json:"room"`
	University            string  `json:"university" validate:"required"`
	Department            string  `json:"department" validate:"required"`
	Website               *string `json:"website"`
	EstablishedYear       *string `json:"establishedYear"`
	ResearchFocus         *string `json:"researchFocus"`
	ContactEmail          string  `json:"contactEmail" validate:"required,email"`
	ContactPhone          *string `json:"contactPhone"`
	OfficeHours           *string `json:"officeHours"`
}

type LabInfoResponse struct {
	ID                    string    `json:"id"`
	LabName               string    `json:"labName"`
	PrincipalInvestigator string    `json:"principalInvestigator"`
	PiTitle               string    `json:"piTitle"`
	PiEmail               string    `json:"piEmail,omitempty"`
	PiPhone               string    `json:"piPhone,omitempty"`
	PiPhoto               string    `json:"piPhoto,omitempty"`
	PiBio                 string    `json:"piBio,omitempty"`
	Description           string    `json:"description,omitempty"`
	Address               string    `json:"address"`
	Latitude              string    `json:"latitude,omitempty"`
	Longitude             string    `json:"longitude,omitempty"`
	Building              string    `json:"building,omitempty"`
	Room                  string    `json:"room,omitempty"`
	University            string    `json:"university"`
	Department            string    `json:"department"`
	Website               string    `json:"website,omitempty"`
	EstablishedYear       string    `json:"establishedYear,omitempty"`
	ResearchFocus         string    `json:"researchFocus,omitempty"`
	ContactEmail          string    `json:"contactEmail"`
	ContactPhone          string    `json:"contactPhone,omitempty"`
	OfficeHours           string    `json:"officeHours,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func NewLabInfoResponse(info *models.LabInfo) *LabInfoResponse {
	return &LabInfoResponse{
		ID:                    info.ID,
		LabName:               info.LabName,
		PrincipalInvestigator: info.PrincipalInvestigator,
		PiTitle:               info.PiTitle,
		PiEmail:               info.PiEmail,
		PiPhone:               info.PiPhone,
		PiPhoto:               info.PiPhoto,
		PiBio:                 info.PiBio,
		Description:           info.Description,
		Address:               info.Address,
		Latitude:              info.Latitude,
		Longitude:             info.Longitude,
		Building:              info.Building,
		Room:                  info.Room,
		University:            info.University,
		Department:            info.Department,
		Website:               info.Website,
		EstablishedYear:       info.EstablishedYear,
		ResearchFocus:         info.ResearchFocus,
		ContactEmail:          info.ContactEmail,
		ContactPhone:          info.ContactPhone,
		OfficeHours:           info.OfficeHours,
		CreatedAt:             info.CreatedAt,
		UpdatedAt:             info.UpdatedAt,
	}
}
