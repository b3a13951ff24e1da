package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill 用于保存技能条目
// Proficiency 为 0-100 的熟练度整数
// SortOrder 值越小越靠前

type Skill struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:100;not null"`
	Category    string `gorm:"size:100"`
	Proficiency int    `gorm:"default:0"`
	SortOrder   int    `gorm:"default:0"`
	CreatedAt   time.Time
}

// BeforeCreate 在插入前补齐 UUID 主键
func (s *Skill) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
