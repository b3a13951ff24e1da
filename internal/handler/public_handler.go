package handler

import (
	"bytes"
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	contentSanitizer = bluemonday.UGCPolicy()
)

// GetContent returns the full key→value content map for the public pages.
// about_text is additionally rendered to sanitized HTML as about_html so the
// frontend does not need its own markdown pipeline.
func (a *API) GetContent(c *gin.Context) {
	contentMap, err := a.content.ContentMap()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := gin.H{"content": contentMap}
	if about, ok := contentMap[db.ContentKeyAboutText]; ok && about != "" {
		response["about_html"] = renderMarkdown(about)
	}

	c.JSON(http.StatusOK, response)
}

// GetProjects returns all projects in display order.
func (a *API) GetProjects(c *gin.Context) {
	items, err := a.projects.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]gin.H, 0, len(items))
	for _, item := range items {
		response = append(response, gin.H{
			"id":           item.ID,
			"title":        item.Title,
			"description":  item.Description,
			"image_url":    item.ImageURL,
			"technologies": item.Technologies,
			"live_url":     item.LiveURL,
			"github_url":   item.SourceURL,
			"category":     item.Category,
			"sort_order":   item.SortOrder,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetSkills returns all skills in display order.
func (a *API) GetSkills(c *gin.Context) {
	items, err := a.skills.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]gin.H, 0, len(items))
	for _, item := range items {
		response = append(response, gin.H{
			"id":          item.ID,
			"name":        item.Name,
			"category":    item.Category,
			"proficiency": item.Proficiency,
			"sort_order":  item.SortOrder,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetTheme returns the singleton theme settings.
func (a *API) GetTheme(c *gin.Context) {
	setting, err := a.theme.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               setting.ID,
		"accent_color":     setting.AccentColor,
		"accent_intensity": setting.AccentIntensity,
	})
}

// HealthCheck 返回服务存活状态
func (a *API) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return contentSanitizer.Sanitize(buf.String())
}
