package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type themeRequest struct {
	AccentColor     string  `json:"accent_color" binding:"required"`
	AccentIntensity float64 `json:"accent_intensity"`
}

// UpdateTheme upsert 固定主键的主题单例
func (a *API) UpdateTheme(c *gin.Context) {
	var req themeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.theme.Update(req.AccentColor, req.AccentIntensity); err != nil {
		switch {
		case errors.Is(err, service.ErrThemeInvalidColor):
			respondError(c, http.StatusBadRequest, "Accent color must be a hex color")
		case errors.Is(err, service.ErrThemeIntensityRange):
			respondError(c, http.StatusBadRequest, "Accent intensity must be between 0.0 and 2.0")
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondSuccess(c)
}
