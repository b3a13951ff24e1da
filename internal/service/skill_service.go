package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSkillInvalidInput 在输入数据不完整时返回
	ErrSkillInvalidInput = errors.New("invalid skill input")
	// ErrSkillProficiencyRange 在熟练度超出 0-100 区间时返回
	ErrSkillProficiencyRange = errors.New("skill proficiency out of range")
)

// SkillService 负责维护技能列表
type SkillService struct {
	db *gorm.DB
}

// NewSkillService 构造 SkillService
func NewSkillService(gdb *gorm.DB) *SkillService {
	return &SkillService{db: gdb}
}

// SkillInput 描述创建或更新技能时可设置的字段
// 指针字段用于判断更新时是否显式传入

type SkillInput struct {
	Name        *string
	Category    *string
	Proficiency *int
	SortOrder   *int
}

// List 返回全部技能，按排序值升序
func (s *SkillService) List() ([]db.Skill, error) {
	var items []db.Skill
	if err := s.db.Order("sort_order ASC, created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return items, nil
}

// Create 新建技能，名称为必填项
func (s *SkillService) Create(input SkillInput) (*db.Skill, error) {
	name := trimmedValue(input.Name)
	if name == "" {
		return nil, ErrSkillInvalidInput
	}

	skill := db.Skill{
		Name:     name,
		Category: trimmedValue(input.Category),
	}
	if input.Proficiency != nil {
		if *input.Proficiency < 0 || *input.Proficiency > 100 {
			return nil, ErrSkillProficiencyRange
		}
		skill.Proficiency = *input.Proficiency
	}
	if input.SortOrder != nil {
		skill.SortOrder = *input.SortOrder
	}

	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	return &skill, nil
}

// Update 按主键做部分更新，仅写入显式传入的字段
// 不做存在性检查，目标行缺失时照常返回成功
func (s *SkillService) Update(id string, input SkillInput) error {
	if input.Proficiency != nil && (*input.Proficiency < 0 || *input.Proficiency > 100) {
		return ErrSkillProficiencyRange
	}

	var skill db.Skill
	if err := s.db.First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load skill: %w", err)
	}

	if input.Name != nil {
		if trimmed := strings.TrimSpace(*input.Name); trimmed != "" {
			skill.Name = trimmed
		}
	}
	if input.Category != nil {
		skill.Category = strings.TrimSpace(*input.Category)
	}
	if input.Proficiency != nil {
		skill.Proficiency = *input.Proficiency
	}
	if input.SortOrder != nil {
		skill.SortOrder = *input.SortOrder
	}

	if err := s.db.Save(&skill).Error; err != nil {
		return fmt.Errorf("update skill: %w", err)
	}

	return nil
}

// Delete 按主键删除技能，目标行缺失时同样视为成功
func (s *SkillService) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&db.Skill{}).Error; err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}
