package service

import (
	"errors"
	"testing"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupProjectServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Project{}); err != nil {
		t.Fatalf("failed to migrate projects: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func TestProjectServiceCreateAndList(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	first, err := svc.Create(ProjectInput{
		Title:        strPtr("Portfolio"),
		Description:  strPtr("Personal site"),
		Technologies: &[]string{"Go", "React"},
		SortOrder:    intPtr(2),
	})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}

	if _, err := svc.Create(ProjectInput{
		Title:       strPtr("CLI tool"),
		Description: strPtr("A terminal thing"),
		SortOrder:   intPtr(1),
	}); err != nil {
		t.Fatalf("create second project failed: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list projects failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(items))
	}
	if items[0].SortOrder > items[1].SortOrder {
		t.Fatalf("expected ascending sort order, got %d then %d", items[0].SortOrder, items[1].SortOrder)
	}
	if items[0].Title != "CLI tool" {
		t.Fatalf("expected lower sort order first, got %q", items[0].Title)
	}
}

func TestProjectServiceCreateRequiresTitleAndDescription(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	if _, err := svc.Create(ProjectInput{Title: strPtr("  ")}); !errors.Is(err, ErrProjectInvalidInput) {
		t.Fatalf("expected ErrProjectInvalidInput, got %v", err)
	}
}

func TestProjectServicePartialUpdate(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	created, err := svc.Create(ProjectInput{
		Title:       strPtr("Portfolio"),
		Description: strPtr("Personal site"),
		Category:    strPtr("web"),
	})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	if err := svc.Update(created.ID, ProjectInput{
		Title:     strPtr("Portfolio v2"),
		SortOrder: intPtr(7),
	}); err != nil {
		t.Fatalf("update project failed: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list projects failed: %v", err)
	}
	if items[0].Title != "Portfolio v2" || items[0].SortOrder != 7 {
		t.Fatalf("update did not persist fields: %#v", items[0])
	}
	if items[0].Category != "web" {
		t.Fatalf("untouched field must survive partial update, got %q", items[0].Category)
	}
}

func TestProjectServiceUpdateKeepsTitleWhenBlank(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	created, err := svc.Create(ProjectInput{
		Title:       strPtr("Portfolio"),
		Description: strPtr("Personal site"),
	})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	if err := svc.Update(created.ID, ProjectInput{
		Title:    strPtr("  "),
		Category: strPtr(""),
	}); err != nil {
		t.Fatalf("update project failed: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list projects failed: %v", err)
	}
	if items[0].Title != "Portfolio" {
		t.Fatalf("blank title must not replace the stored one, got %q", items[0].Title)
	}
	if items[0].Category != "" {
		t.Fatalf("empty category must be applied verbatim, got %q", items[0].Category)
	}
}

func TestProjectServiceDeleteIsIdempotent(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	if err := svc.Delete("nonexistent"); err != nil {
		t.Fatalf("delete of a missing project must succeed, got %v", err)
	}
}
