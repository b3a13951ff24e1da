package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project 用于保存前台展示的项目卡片
// Technologies 以 JSON 序列化存储技术标签
// SortOrder 值越小越靠前

type Project struct {
	ID           string   `gorm:"primaryKey;size:36"`
	Title        string   `gorm:"size:200;not null"`
	Description  string   `gorm:"type:text;not null"`
	ImageURL     string   `gorm:"size:500"`
	Technologies []string `gorm:"serializer:json"`
	LiveURL      string   `gorm:"size:500"`
	SourceURL    string   `gorm:"size:500"`
	Category     string   `gorm:"size:100"`
	SortOrder    int      `gorm:"default:0"`
	CreatedAt    time.Time
}

// BeforeCreate 在插入前补齐 UUID 主键
func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
