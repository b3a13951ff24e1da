package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	ID           string    `json:"id"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Technologies *[]string `json:"technologies"`
	LiveURL      *string   `json:"live_url"`
	SourceURL    *string   `json:"github_url"`
	Category     *string   `json:"category"`
	SortOrder    *int      `json:"sort_order"`
}

type deleteRequest struct {
	ID string `json:"id" binding:"required"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Technologies: r.Technologies,
		LiveURL:      r.LiveURL,
		SourceURL:    r.SourceURL,
		Category:     r.Category,
		SortOrder:    r.SortOrder,
	}
}

// CreateProject 创建新项目
func (a *API) CreateProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := a.projects.Create(req.toInput()); err != nil {
		if errors.Is(err, service.ErrProjectInvalidInput) {
			respondError(c, http.StatusBadRequest, "Title and description are required")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}

// UpdateProject 按请求体中的 id 做部分更新
func (a *API) UpdateProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ID == "" {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.projects.Update(req.ID, req.toInput()); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}

// DeleteProject 按请求体中的 id 删除项目
func (a *API) DeleteProject(c *gin.Context) {
	var req deleteRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.projects.Delete(req.ID); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}
