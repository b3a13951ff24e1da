package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/devfolio/internal/db"
)

func TestGetContentRendersAboutHTML(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	if err := api.content.Update(db.ContentKeyHeroTitle, "Jane Doe"); err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}
	if err := api.content.Update(db.ContentKeyAboutText, "I build **backends**."); err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}

	w := performJSON(t, api.GetContent, http.MethodGet, "/api/content", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Content   map[string]string `json:"content"`
		AboutHTML string            `json:"about_html"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Content[db.ContentKeyHeroTitle] != "Jane Doe" {
		t.Fatalf("expected hero_title in content map, got %#v", resp.Content)
	}
	if !strings.Contains(resp.AboutHTML, "<strong>backends</strong>") {
		t.Fatalf("expected markdown rendered to HTML, got %q", resp.AboutHTML)
	}
}

func TestGetProjectsOrderedBySortOrder(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	seed := []db.Project{
		{Title: "Third", Description: "d", SortOrder: 30},
		{Title: "First", Description: "d", SortOrder: 10},
		{Title: "Second", Description: "d", SortOrder: 20},
	}
	for i := range seed {
		if err := db.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed project: %v", err)
		}
	}

	w := performJSON(t, api.GetProjects, http.MethodGet, "/api/projects", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp []struct {
		Title     string `json:"title"`
		SortOrder int    `json:"sort_order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(resp))
	}
	for i, expected := range []string{"First", "Second", "Third"} {
		if resp[i].Title != expected {
			t.Fatalf("unexpected order at %d: got %q, want %q", i, resp[i].Title, expected)
		}
	}
}

func TestGetThemeFallsBackToDefaults(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	w := performJSON(t, api.GetTheme, http.MethodGet, "/api/theme", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		ID          string `json:"id"`
		AccentColor string `json:"accent_color"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != db.ThemeSettingID {
		t.Fatalf("expected default theme id, got %q", resp.ID)
	}
	if resp.AccentColor == "" {
		t.Fatalf("expected a default accent color")
	}
}
