package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned when the login pair does not match the admin account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for missing, malformed, or unrecognized bearer tokens.
	ErrInvalidToken = errors.New("invalid token")
)

const (
	tokenLength   = 64
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// AuthService issues and validates admin bearer tokens.
// Tokens are persisted in admin_sessions so a restart does not log the admin out.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService constructs an AuthService.
func NewAuthService(gdb *gorm.DB) *AuthService {
	return &AuthService{db: gdb}
}

// Login verifies the credential pair against the seeded admin account and,
// on success, mints an opaque token and records it as a session row.
// A mismatch has no side effect.
func (s *AuthService) Login(username, password string) (string, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("load admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	if err := s.db.Create(&db.AdminSession{Token: token}).Error; err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}

	return token, nil
}

// Validate checks token validity by row existence. No distinction is made
// between a token that expired and one that never existed.
func (s *AuthService) Validate(token string) error {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ErrInvalidToken
	}

	var count int64
	if err := s.db.Model(&db.AdminSession{}).Where("token = ?", trimmed).Count(&count).Error; err != nil {
		return fmt.Errorf("look up session: %w", err)
	}
	if count == 0 {
		return ErrInvalidToken
	}

	return nil
}

// generateToken draws a fixed-length alphanumeric token from crypto/rand.
func generateToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}

	return string(buf), nil
}
