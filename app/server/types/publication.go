package types

import (
	"time"

	"gilab-api/app/server/models"
)

type AuthorInput struct {
	Name     string  `json:"name" validate:"required"`
	Homepage *string `json:"homepage"`
	Order    *int    `json:"order"` // 不传时按数组下标排
}

type PublicationInput struct {
	Title      string  `json:"title" validate:"required"`
	Journal    *string `json:"journal"`
	Conference *string `json:"conference"`
	Year       int     `json:"year" validate:"required"`
	Type       string  `json:"type" validate:"required,oneof=journal conference"`
	Abstract   string  `json:"abstract" validate:"required"`
	PdfURL     *string `json:"pdfUrl"`
	ImageURL   *string `json:"imageUrl"`
	Order      *int    `json:"order"`
}

type PublicationCreateRequest struct {
	PublicationData PublicationInput `json:"publication_data" validate:"required"`
	AuthorsData     []AuthorInput    `json:"authors_data" validate:"dive"`
}

// PublicationUpdateRequest 全部字段可选；
// authors_data / authors 有一个非空时整体替换作者列表，都缺省时保持原作者不动
type PublicationUpdateRequest struct {
	Title       *string        `json:"title"`
	Journal     *string        `json:"journal"`
	Conference  *string        `json:"conference"`
	Year        *int           `json:"year"`
	Type        *string        `json:"type" validate:"omitempty,oneof=journal conference"`
	Abstract    *string        `json:"abstract"`
	PdfURL      *string        `json:"pdfUrl"`
	ImageURL    *string        `json:"imageUrl"`
	Order       *int           `json:"order"`
	Authors     *[]AuthorInput `json:"authors" validate:"omitempty,dive"`
	AuthorsData *[]AuthorInput `json:"authors_data" validate:"omitempty,dive"`
}

type AuthorResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Homepage      string `json:"homepage,omitempty"`
	Order         int    `json:"order"`
	PublicationID string `json:"publicationId"`
}

type PublicationResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Journal   string           `json:"journal,omitempty"`
	Conference string          `json:"conference,omitempty"`
	Year      int              `json:"year"`
	Type      string           `json:"type"`
	Abstract  string           `json:"abstract"`
	PdfURL    string           `json:"pdfUrl,omitempty"`
	ImageURL  string           `json:"imageUrl,omitempty"`
	Order     int              `json:"order"`
	AuthorID  string           `json:"authorId"`
	CreatedAt time.Time        `json:"createdAt"`
	Authors   []AuthorResponse `json:"authors"`
}

func NewAuthorResponse(author *models.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:            author.ID,
		Name:          author.Name,
		Homepage:      author.Homepage,
		Order:         author.DisplayOrder,
		PublicationID: author.PublicationID,
	}
}

func NewPublicationResponse(pub *models.Publication) *PublicationResponse {
	authors := []AuthorResponse{}
	for i := range pub.Authors {
		authors = append(authors, *NewAuthorResponse(&pub.Authors[i]))
	}

	return &PublicationResponse{
		ID:         pub.ID,
		Title:      pub.Title,
		Journal:    pub.Journal,
		Conference: pub.Conference,
		Year:       pub.Year,
		Type:       pub.Type,
		Abstract:   pub.Abstract,
		PdfURL:     pub.PdfURL,
		ImageURL:   pub.ImageURL,
		Order:      pub.DisplayOrder,
		AuthorID:   pub.AuthorID,
		CreatedAt:  pub.CreatedAt,
		Authors:    authors,
	}
}
