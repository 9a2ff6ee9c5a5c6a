package models

type Member struct {
	Base

	Name     string  `gorm:"column:name;size:255"`
	Email    *string `gorm:"column:email;size:255;uniqueIndex"` // 可以为空，非空时全局唯一
	ImageURL string  `gorm:"column:image_url;size:1024"`
	Homepage string  `gorm:"column:homepage;size:1024"`

	Degree   string `gorm:"column:degree;size:50"`     // masters / bachelors / phd / other
	JoinedAt string `gorm:"column:joined_at;size:100"` // 例如 "2021.03 ~ 现在"
	Status   string `gorm:"column:status;size:255"`    // 例如 "current" / "alumni"

	Bio               string `gorm:"column:bio;type:text"`
	ResearchInterests string `gorm:"column:research_interests;type:text"`
}
