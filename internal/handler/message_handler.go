package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type messageCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type messageReadRequest struct {
	ID     string `json:"id" binding:"required"`
	IsRead bool   `json:"is_read"`
}

// CreateMessage 处理公开联系表单的提交，无需任何令牌
func (a *API) CreateMessage(c *gin.Context) {
	var req messageCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := a.messages.Create(req.Name, req.Email, req.Message); err != nil {
		if errors.Is(err, service.ErrMessageInvalidInput) {
			respondError(c, http.StatusBadRequest, "Name, email and message are required")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}

// ListMessages 返回全部留言，按创建时间倒序
func (a *API) ListMessages(c *gin.Context) {
	items, err := a.messages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]gin.H, 0, len(items))
	for _, item := range items {
		response = append(response, gin.H{
			"id":         item.ID,
			"name":       item.Name,
			"email":      item.Email,
			"message":    item.Message,
			"is_read":    item.IsRead,
			"created_at": item.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// UpdateMessageRead 翻转留言的已读标记
func (a *API) UpdateMessageRead(c *gin.Context) {
	var req messageReadRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.messages.SetRead(req.ID, req.IsRead); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}

// DeleteMessage 按请求体中的 id 删除留言
func (a *API) DeleteMessage(c *gin.Context) {
	var req deleteRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.messages.Delete(req.ID); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(c)
}
