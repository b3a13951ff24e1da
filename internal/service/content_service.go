package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrContentKeyUnknown is returned when an update targets a key outside the fixed enumeration.
var ErrContentKeyUnknown = errors.New("unknown content key")

var contentKeys = []string{
	db.ContentKeyHeroTitle,
	db.ContentKeyHeroSubtitle,
	db.ContentKeyHeroDescription,
	db.ContentKeyAboutText,
	db.ContentKeyContactHeading,
	db.ContentKeyContactSubtext,
	db.ContentKeyProfileImageURL,
	db.ContentKeyLocation,
}

// ContentService maintains the keyed site copy shown on the public pages.
type ContentService struct {
	db *gorm.DB
}

// NewContentService constructs a ContentService.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// Update upserts a single content entry by key, stamping the update time.
func (s *ContentService) Update(key, content string) error {
	trimmedKey := strings.TrimSpace(key)
	if !isKnownContentKey(trimmedKey) {
		return ErrContentKeyUnknown
	}

	entry := db.SiteContent{ID: trimmedKey, Content: content, UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("upsert site content: %w", err)
	}

	return nil
}

// ContentMap returns every stored entry keyed by its identifier.
// Keys never written simply stay absent; the frontend supplies fallbacks.
func (s *ContentService) ContentMap() (map[string]string, error) {
	var entries []db.SiteContent
	if err := s.db.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list site content: %w", err)
	}

	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		result[entry.ID] = entry.Content
	}

	return result, nil
}

func isKnownContentKey(key string) bool {
	for _, known := range contentKeys {
		if key == known {
			return true
		}
	}
	return false
}
