package handler

import (
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	auth      *service.AuthService
	content   *service.ContentService
	projects  *service.ProjectService
	skills    *service.SkillService
	messages  *service.MessageService
	theme     *service.ThemeService
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:        gdb,
		auth:      service.NewAuthService(gdb),
		content:   service.NewContentService(gdb),
		projects:  service.NewProjectService(gdb),
		skills:    service.NewSkillService(gdb),
		messages:  service.NewMessageService(gdb),
		theme:     service.NewThemeService(gdb),
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
