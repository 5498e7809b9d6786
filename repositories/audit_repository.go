package repositories

import (
	"tiny-cms/models"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(entry *models.AuditLog) error
	GetList(page, limit int) ([]models.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditRepository) GetList(page, limit int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{})
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Preload("User").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error

	return entries, total, err
}
