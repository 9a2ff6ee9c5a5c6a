package models

type User struct {
	Base

	// 基础信息
	Email     string `gorm:"column:email;size:255;uniqueIndex"` // 登录邮箱，全局唯一
	FirstName string `gorm:"column:first_name;size:100"`
	LastName  string `gorm:"column:last_name;size:100"`

	// 状态标记
	IsApproved bool `gorm:"column:is_approved"` // 注册后为 false ，管理员审批后才能登录
	IsAdmin    bool `gorm:"column:is_admin"`    // 是否为管理员：管理员可以写入（更改），非管理员只能读取（浏览）

	// 登录与授权认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存
}
