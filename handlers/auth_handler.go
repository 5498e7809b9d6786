package handlers

import (
	"net/http"

	"tiny-cms/models"
	"tiny-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpHelper.SendBadRequest(c, "Email and a password of at least 8 characters are required")
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpHelper.SendBadRequest(c, "Email and password are required")
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(actor.ID)
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
