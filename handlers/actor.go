package handlers

import (
	"tiny-cms/helper"
	"tiny-cms/models"

	"github.com/gin-gonic/gin"
)

var httpHelper = &helper.HTTPHelper{}

// currentActor assembles the verified actor the auth middleware stored on the
// context. Services receive it explicitly with every call.
func currentActor(c *gin.Context) (models.Actor, bool) {
	userID, okID := c.Get("user_id")
	role, okRole := c.Get("role")
	if !okID || !okRole {
		return models.Actor{}, false
	}
	return models.Actor{
		ID:   userID.(uint),
		Role: models.UserRole(role.(string)),
	}, true
}
