package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message 保存访客通过联系表单提交的留言
// IsRead 仅可由管理员翻转，创建时默认未读

type Message struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:200;not null"`
	Message   string `gorm:"type:text;not null"`
	IsRead    bool   `gorm:"default:false"`
	CreatedAt time.Time
}

// BeforeCreate 在插入前补齐 UUID 主键
func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
