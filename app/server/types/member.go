package types

import "gilab-api/app/server/models"

type MemberCreateRequest struct {
	Name              string  `json:"name" validate:"required"`
	Degree            string  `json:"degree" validate:"required"`
	Email             *string `json:"email" validate:"omitempty,email"`
	ImageURL          *string `json:"imageUrl"`
	Homepage          *string `json:"homepage"`
	JoinedAt          string  `json:"joinedAt" validate:"required"`
	Status            *string `json:"status"`
	Bio               *string `json:"bio"`
	ResearchInterests *string `json:"researchInterests"`
}

type MemberUpdateRequest struct {
	Name              *string `json:"name"`
	Degree            *string `json:"degree"`
	Email             *string `json:"email" validate:"omitempty,email"`
	ImageURL          *string `json:"imageUrl"`
	Homepage          *string `json:"homepage"`
	JoinedAt          *string `json:"joinedAt"`
	Status            *string `json:"status"`
	Bio               *string `json:"bio"`
	ResearchInterests *string `json:"researchInterests"`
}

type MemberResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Degree            string  `json:"degree"`
	Email             *string `json:"email"`
	ImageURL          string  `json:"imageUrl,omitempty"`
	Homepage          string  `json:"homepage,omitempty"`
	JoinedAt          string  `json:"joinedAt"`
	Status            string  `json:"status,omitempty"`
	Bio               string  `json:"bio,omitempty"`
	ResearchInterests string  `json:"researchInterests,omitempty"`
}

// GroupedMembersResponse 按学位 / 状态分组的成员列表，分组在读取时计算，不落库
type GroupedMembersResponse struct {
	Masters   []MemberResponse `json:"masters"`
	Bachelors []MemberResponse `json:"bachelors"`
	Phd       []MemberResponse `json:"phd"`
	Other     []MemberResponse `json:"other"`
	Alumni    []MemberResponse `json:"alumni"`
}

func NewMemberResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:                member.ID,
		Name:              member.Name,
		Degree:            member.Degree,
		Email:             member.Email,
		ImageURL:          member.ImageURL,
		Homepage:          member.Homepage,
		JoinedAt:          member.JoinedAt,
		Status:            member.Status,
		Bio:               member.Bio,
		ResearchInterests: member.ResearchInterests,
	}
}
