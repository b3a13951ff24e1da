package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// ErrMessageInvalidInput is returned when a contact submission is missing required fields.
var ErrMessageInvalidInput = errors.New("invalid message input")

// messageSanitizer strips all markup from visitor-submitted text before storage.
var messageSanitizer = bluemonday.StrictPolicy()

// MessageService handles contact-form messages. Creation is open to the
// public; reading, marking and deleting are admin operations.
type MessageService struct {
	db *gorm.DB
}

// NewMessageService constructs a MessageService.
func NewMessageService(gdb *gorm.DB) *MessageService {
	return &MessageService{db: gdb}
}

// Create stores a visitor message unread. Name, email, and body are required;
// the email only needs to look like an address, no verification happens.
func (s *MessageService) Create(name, email, body string) (*db.Message, error) {
	trimmedName := strings.TrimSpace(name)
	trimmedEmail := strings.TrimSpace(email)
	trimmedBody := strings.TrimSpace(body)

	if trimmedName == "" || trimmedBody == "" {
		return nil, ErrMessageInvalidInput
	}
	if !strings.Contains(trimmedEmail, "@") {
		return nil, ErrMessageInvalidInput
	}

	message := db.Message{
		Name:    messageSanitizer.Sanitize(trimmedName),
		Email:   trimmedEmail,
		Message: messageSanitizer.Sanitize(trimmedBody),
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	return &message, nil
}

// List returns all messages, newest first.
func (s *MessageService) List() ([]db.Message, error) {
	var items []db.Message
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return items, nil
}

// SetRead flips the read flag. The flag is the only mutable field.
func (s *MessageService) SetRead(id string, isRead bool) error {
	if err := s.db.Model(&db.Message{}).Where("id = ?", id).Update("is_read", isRead).Error; err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	return nil
}

// Delete removes a message by id; a missing row still counts as success.
func (s *MessageService) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&db.Message{}).Error; err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
