package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrThemeInvalidColor is returned when the accent color is not a hex color string.
	ErrThemeInvalidColor = errors.New("invalid accent color")
	// ErrThemeIntensityRange is returned when the accent intensity falls outside 0.0-2.0.
	ErrThemeIntensityRange = errors.New("accent intensity out of range")
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ThemeService maintains the single theme_settings row.
type ThemeService struct {
	db *gorm.DB
}

// NewThemeService constructs a ThemeService.
func NewThemeService(gdb *gorm.DB) *ThemeService {
	return &ThemeService{db: gdb}
}

// Get returns the singleton theme, falling back to defaults when the row
// has never been written.
func (s *ThemeService) Get() (db.ThemeSetting, error) {
	var setting db.ThemeSetting
	if err := s.db.Where("id = ?", db.ThemeSettingID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.ThemeSetting{ID: db.ThemeSettingID, AccentColor: "#3b82f6", AccentIntensity: 1.0}, nil
		}
		return setting, fmt.Errorf("load theme settings: %w", err)
	}
	return setting, nil
}

// Update upserts the fixed default row. Repeating the same payload leaves
// exactly one row with the latest values.
func (s *ThemeService) Update(accentColor string, accentIntensity float64) error {
	trimmedColor := strings.ToLower(strings.TrimSpace(accentColor))
	if !hexColorPattern.MatchString(trimmedColor) {
		return ErrThemeInvalidColor
	}
	if accentIntensity < 0 || accentIntensity > 2 {
		return ErrThemeIntensityRange
	}

	setting := db.ThemeSetting{
		ID:              db.ThemeSettingID,
		AccentColor:     trimmedColor,
		AccentIntensity: accentIntensity,
		UpdatedAt:       time.Now(),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"accent_color", "accent_intensity", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert theme settings: %w", err)
	}

	return nil
}
