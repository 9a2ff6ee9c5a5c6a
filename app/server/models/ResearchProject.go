package models

type ResearchProject struct {
	Base

	Title          string `gorm:"column:title;type:text"`
	Description    string `gorm:"column:description;type:text"`
	Category       string `gorm:"column:category;type:text"`
	Date           string `gorm:"column:date;type:text"`
	LeadResearcher string `gorm:"column:lead_researcher;type:text"`
	ImageURL       string `gorm:"column:image_url;type:text"`

	DisplayOrder int `gorm:"column:display_order"`

	// 创建者（用户），可以为空
	AuthorID *string `gorm:"column:author_id;size:36"`
}
