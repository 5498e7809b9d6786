package handlers

import (
	"net/http"

	"tiny-cms/models"
	"tiny-cms/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpHelper.SendBadRequest(c, "Slug and title are required")
		return
	}

	article, err := h.articleService.Create(actor, req)
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	articles, err := h.articleService.List(actor)
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	article, err := h.articleService.Get(actor, c.Param("slug"))
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpHelper.SendBadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.Update(actor, c.Param("slug"), req)
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	if err := h.articleService.Delete(actor, c.Param("slug")); err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) ApproveArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	article, err := h.articleService.Approve(actor, c.Param("slug"))
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	article, err := h.articleService.Publish(actor, c.Param("slug"))
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}
