package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

type Article struct {
	ID                  uint             `json:"id" gorm:"primarykey"`
	Slug                string           `json:"slug" gorm:"uniqueIndex;not null"`
	Title               string           `json:"title" gorm:"not null"`
	Status              ArticleStatus    `json:"status" gorm:"default:'draft'"`
	CreatorID           uint             `json:"creator_id" gorm:"not null"`
	Creator             User             `json:"creator" gorm:"foreignKey:CreatorID"`
	PublishApprovedByID *uint            `json:"publish_approved_by_id"`
	PublishApprovedBy   *User            `json:"publish_approved_by,omitempty" gorm:"foreignKey:PublishApprovedByID"`
	PublishApprovedAt   *time.Time       `json:"publish_approved_at"`
	Versions            []ArticleVersion `json:"versions,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	DeletedAt           gorm.DeletedAt   `json:"-" gorm:"index"`
}

// Approved reports whether the publish approval mark is set. The two approval
// columns are only ever written through SetApproval, so they are set or null
// as a pair.
func (a *Article) Approved() bool {
	return a.PublishApprovedByID != nil && a.PublishApprovedAt != nil
}

// SetApproval records the publish approval. Re-approving overwrites the
// previous mark; there is no guard against a second approval.
func (a *Article) SetApproval(byID uint, at time.Time) {
	a.PublishApprovedByID = &byID
	a.PublishApprovedAt = &at
}
