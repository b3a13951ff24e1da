package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ErrProjectInvalidInput 在输入数据不完整时返回
var ErrProjectInvalidInput = errors.New("invalid project input")

// ProjectService 负责维护前台展示的项目集合
// 提供排序、增删改查能力，与 handler 解耦

type ProjectService struct {
	db *gorm.DB
}

// NewProjectService 构造 ProjectService
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ProjectInput 描述创建或更新项目时可设置的字段
// 指针字段用于判断更新时是否显式传入

type ProjectInput struct {
	Title        *string
	Description  *string
	ImageURL     *string
	Technologies *[]string
	LiveURL      *string
	SourceURL    *string
	Category     *string
	SortOrder    *int
}

// List 返回全部项目，按排序值升序
func (s *ProjectService) List() ([]db.Project, error) {
	var items []db.Project
	if err := s.db.Order("sort_order ASC, created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// Create 新建项目，标题与描述为必填项
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	title := trimmedValue(input.Title)
	description := trimmedValue(input.Description)
	if title == "" || description == "" {
		return nil, ErrProjectInvalidInput
	}

	project := db.Project{
		Title:       title,
		Description: description,
		ImageURL:    trimmedValue(input.ImageURL),
		LiveURL:     trimmedValue(input.LiveURL),
		SourceURL:   trimmedValue(input.SourceURL),
		Category:    trimmedValue(input.Category),
	}
	if input.Technologies != nil {
		project.Technologies = *input.Technologies
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return &project, nil
}

// Update 按主键做部分更新，仅写入显式传入的字段
// 不做存在性检查，目标行缺失时照常返回成功（幂等语义，最后写入生效）
func (s *ProjectService) Update(id string, input ProjectInput) error {
	var project db.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load project: %w", err)
	}

	if input.Title != nil {
		if trimmed := strings.TrimSpace(*input.Title); trimmed != "" {
			project.Title = trimmed
		}
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.ImageURL != nil {
		project.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Technologies != nil {
		project.Technologies = *input.Technologies
	}
	if input.LiveURL != nil {
		project.LiveURL = strings.TrimSpace(*input.LiveURL)
	}
	if input.SourceURL != nil {
		project.SourceURL = strings.TrimSpace(*input.SourceURL)
	}
	if input.Category != nil {
		project.Category = strings.TrimSpace(*input.Category)
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}

	if err := s.db.Save(&project).Error; err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	return nil
}

// Delete 按主键删除项目，目标行缺失时同样视为成功
func (s *ProjectService) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&db.Project{}).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func trimmedValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
