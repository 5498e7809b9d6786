package handlers

import (
	"net/http"

	"tiny-cms/services"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated read-only projection consumed by
// external renderers and the SDK. It never goes through the workflow engine.
type PublicHandler struct {
	articleService services.ArticleService
	themeService   services.ThemeService
}

func NewPublicHandler(articleService services.ArticleService, themeService services.ThemeService) *PublicHandler {
	return &PublicHandler{
		articleService: articleService,
		themeService:   themeService,
	}
}

func (h *PublicHandler) GetPublishedArticles(c *gin.Context) {
	items, err := h.articleService.ListPublished()
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *PublicHandler) GetPublishedArticle(c *gin.Context) {
	article, err := h.articleService.GetPublished(c.Param("slug"))
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *PublicHandler) GetTheme(c *gin.Context) {
	theme, err := h.themeService.GetTheme()
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}
