package models

import "time"

// Session 与前端会话方案保持一致的表结构，当前没有任何接口读写它
type Session struct {
	SID    string    `gorm:"column:sid;primaryKey;size:255"`
	Sess   string    `gorm:"column:sess;type:json"`
	Expire time.Time `gorm:"column:expire"`
}
