package models

type Author struct {
	Base

	Name     string `gorm:"column:name;type:text"`
	Homepage string `gorm:"column:homepage;type:text"`

	// 所属论文
	PublicationID string `gorm:"column:publication_id;size:36;index"`

	// 同一篇论文内的署名顺序
	DisplayOrder int `gorm:"column:display_order"`
}
