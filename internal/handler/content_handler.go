package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type contentRequest struct {
	ID      string `json:"id" binding:"required"`
	Content string `json:"content"`
}

// UpdateContent 按键 upsert 一条站点文案
func (a *API) UpdateContent(c *gin.Context) {
	var req contentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.content.Update(req.ID, req.Content); err != nil {
		if errors.Is(err, service.ErrContentKeyUnknown) {
			respondError(c, http.StatusBadRequest, "Unknown content key")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}
