package models

type ResearchArea struct {
	Base

	Name        string `gorm:"column:name;type:text"`
	Description string `gorm:"column:description;type:text"`
	ImageURL    string `gorm:"column:image_url;type:text"`

	// 自引用树结构， NULL 表示顶层领域，深度不限，也不做环检测
	ParentID *string `gorm:"column:parent_id;size:36;index"`

	// 同一父节点下的手动排序值
	DisplayOrder int  `gorm:"column:display_order"`
	IsActive     bool `gorm:"column:is_active"`

	// 连接模型时使用
	Parent *ResearchArea `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
}
