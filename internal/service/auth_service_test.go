package service

import (
	"errors"
	"testing"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.AdminSession{}); err != nil {
		t.Fatalf("failed to migrate auth tables: %v", err)
	}

	db.DB = gdb

	if err := db.EnsureAdminUser("admin", "faizan150$$$"); err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestAuthServiceLoginIssuesToken(t *testing.T) {
	cleanup := setupAuthServiceTestDB(t)
	defer cleanup()

	svc := NewAuthService(db.DB)
	token, err := svc.Login("admin", "faizan150$$$")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected a 64-char token, got %d chars", len(token))
	}

	var count int64
	if err := db.DB.Model(&db.AdminSession{}).Where("token = ?", token).Count(&count).Error; err != nil {
		t.Fatalf("failed to count sessions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected token to be persisted, found %d rows", count)
	}
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	cleanup := setupAuthServiceTestDB(t)
	defer cleanup()

	svc := NewAuthService(db.DB)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "nope"},
		{name: "unknown user", username: "root", password: "faizan150$$$"},
		{name: "empty pair", username: "", password: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}

	var count int64
	if err := db.DB.Model(&db.AdminSession{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count sessions: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed logins must not create sessions, found %d rows", count)
	}
}

func TestAuthServiceValidate(t *testing.T) {
	cleanup := setupAuthServiceTestDB(t)
	defer cleanup()

	svc := NewAuthService(db.DB)
	token, err := svc.Login("admin", "faizan150$$$")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Validate(token); err != nil {
		t.Fatalf("expected issued token to validate, got %v", err)
	}
	if err := svc.Validate("not-a-real-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for unknown token, got %v", err)
	}
	if err := svc.Validate(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}
