package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type AuditAction string

const (
	AuditArticleCreated   AuditAction = "article_created"
	AuditArticleUpdated   AuditAction = "article_updated"
	AuditArticleApproved  AuditAction = "article_approved"
	AuditArticlePublished AuditAction = "article_published"
	AuditArticleDeleted   AuditAction = "article_deleted"
	AuditThemeUpdated     AuditAction = "theme_updated"
)

type AuditMetadata map[string]interface{}

func (m AuditMetadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *AuditMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New(fmt.Sprint("cannot scan audit metadata from ", value))
	}
}

type AuditLog struct {
	ID           uint          `json:"id" gorm:"primarykey"`
	UserID       uint          `json:"user_id" gorm:"not null;index"`
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Action       AuditAction   `json:"action" gorm:"not null"`
	ResourceType string        `json:"resource_type" gorm:"not null"`
	ResourceID   string        `json:"resource_id"`
	Metadata     AuditMetadata `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time     `json:"created_at"`
}
