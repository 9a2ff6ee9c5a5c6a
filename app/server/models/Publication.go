package models

type Publication struct {
	Base

	// 论文基础信息
	Title      string `gorm:"column:title;type:text"`
	Journal    string `gorm:"column:journal;type:text"`
	Conference string `gorm:"column:conference;type:text"`
	Year       int    `gorm:"column:year;index"`
	Type       string `gorm:"column:type;size:32"` // journal | conference
	Abstract   string `gorm:"column:abstract;type:text"`
	PdfURL     string `gorm:"column:pdf_url;type:text"`
	ImageURL   string `gorm:"column:image_url;type:text"`

	// 同一年份内的手动排序值，只有相对大小有意义
	DisplayOrder int `gorm:"column:display_order"`

	// 创建者（用户）
	AuthorID string `gorm:"column:author_id;size:36;index"`

	// 论文的署名作者，随论文级联删除
	Authors []Author `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE"`
}
