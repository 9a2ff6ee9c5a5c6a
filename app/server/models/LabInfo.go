package models

type LabInfo struct {
	Base // ID 固定为 constants.LabInfoID ，单例行

	// 实验室
	LabName     string `gorm:"column:lab_name;type:text"`
	Description string `gorm:"column:description;type:text"`
	Website     string `gorm:"column:website;type:text"`

	// 负责人（PI）
	PrincipalInvestigator string `gorm:"column:principal_investigator;type:text"`
	PiTitle               string `gorm:"column:pi_title;type:text"`
	PiEmail               string `gorm:"column:pi_email;size:255"`
	PiPhone               string `gorm:"column:pi_phone;size:50"`
	PiPhoto               string `gorm:"column:pi_photo;type:text"`
	PiBio                 string `gorm:"column:pi_bio;type:text"`

	// 位置
	Address   string `gorm:"column:address;type:text"`
	Latitude  string `gorm:"column:latitude;type:text"`
	Longitude string `gorm:"column:longitude;type:text"`
	Building  string `gorm:"column:building;type:text"`
	Room      string `gorm:"column:room;type:text"`

	// 所属
	University      string `gorm:"column:university;type:text"`
	Department      string `gorm:"column:department;type:text"`
	EstablishedYear string `gorm:"column:established_year;size:10"`
	ResearchFocus   string `gorm:"column:research_focus;type:text"`

	// 联系方式
	ContactEmail string `gorm:"column:contact_email;size:255"`
	ContactPhone string `gorm:"column:contact_phone;size:50"`
	OfficeHours  string `gorm:"column:office_hours;type:text"`
}
