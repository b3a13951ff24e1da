package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type skillRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Proficiency *int    `json:"proficiency"`
	SortOrder   *int    `json:"sort_order"`
}

func (r skillRequest) toInput() service.SkillInput {
	return service.SkillInput{
		Name:        r.Name,
		Category:    r.Category,
		Proficiency: r.Proficiency,
		SortOrder:   r.SortOrder,
	}
}

// CreateSkill 创建新技能
func (a *API) CreateSkill(c *gin.Context) {
	var req skillRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := a.skills.Create(req.toInput()); err != nil {
		switch {
		case errors.Is(err, service.ErrSkillInvalidInput):
			respondError(c, http.StatusBadRequest, "Name is required")
		case errors.Is(err, service.ErrSkillProficiencyRange):
			respondError(c, http.StatusBadRequest, "Proficiency must be between 0 and 100")
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondSuccess(c)
}

// UpdateSkill 按请求体中的 id 做部分更新
func (a *API) UpdateSkill(c *gin.Context) {
	var req skillRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ID == "" {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.skills.Update(req.ID, req.toInput()); err != nil {
		if errors.Is(err, service.ErrSkillProficiencyRange) {
			respondError(c, http.StatusBadRequest, "Proficiency must be between 0 and 100")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}

// DeleteSkill 按请求体中的 id 删除技能
func (a *API) DeleteSkill(c *gin.Context) {
	var req deleteRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.skills.Delete(req.ID); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}
