package services

import (
	"tiny-cms/models"
	"tiny-cms/policy"
	"tiny-cms/repositories"
)

type AuditService interface {
	GetList(actor models.Actor, params models.AuditListParams) ([]models.AuditLog, int64, error)
}

type auditService struct {
	auditRepo repositories.AuditRepository
}

func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) GetList(actor models.Actor, params models.AuditListParams) ([]models.AuditLog, int64, error) {
	if !policy.CanApproveOrPublish(actor.Role) {
		return nil, 0, models.ErrorForbidden{Message: "maintainer or owner only"}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	return s.auditRepo.GetList(page, limit)
}
