package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base 所有实体共用的主键与时间戳，主键为随机 UUID 的 36 位字符串
type Base struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	// 预先指定了 ID 的（例如 lab_info 单例）不覆盖
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
