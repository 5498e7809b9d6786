package handlers

import (
	"net/http"

	"tiny-cms/models"
	"tiny-cms/services"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService services.AuditService
}

func NewAuditHandler(auditService services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "Unauthorized")
		return
	}

	var params models.AuditListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		httpHelper.SendBadRequest(c, "Invalid query parameters")
		return
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 50
	}

	entries, total, err := h.auditService.GetList(actor, params)
	if err != nil {
		httpHelper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      entries,
		"pagination": httpHelper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}
