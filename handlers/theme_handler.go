package handlers

import (
	"net/http"

	"tiny-cms/models"
	"tiny-cms/services"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeService services.ThemeService
}

func NewThemeHandler(themeService services.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	var req models.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpHelper.SendBadRequest(c, "Invalid request body")
		return
	}

	theme, err := h.themeService.UpdateTheme(actor, req)
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}
