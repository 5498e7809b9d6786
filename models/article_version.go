package models

import "time"

type VersionKind string

const (
	KindDraft     VersionKind = "draft"
	KindPublished VersionKind = "published"
)

// ArticleVersion ties an article to one immutable content snapshot. Versions
// are append-only; Seq increases monotonically per article and is the ordering
// authority (timestamps are informational only, sub-clock-resolution writes
// would make them ambiguous). The composite unique index makes Seq collisions
// from concurrent appends a hard database error instead of a silent tie.
type ArticleVersion struct {
	ID          uint        `json:"id" gorm:"primarykey"`
	ArticleID   uint        `json:"article_id" gorm:"not null;uniqueIndex:idx_article_versions_article_seq,priority:1"`
	Article     *Article    `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	Kind        VersionKind `json:"kind" gorm:"not null;index"`
	Seq         int         `json:"seq" gorm:"not null;uniqueIndex:idx_article_versions_article_seq,priority:2"`
	ContentID   string      `json:"content_id" gorm:"not null"`
	Content     *Content    `json:"content,omitempty" gorm:"foreignKey:ContentID"`
	UpdatedByID uint        `json:"updated_by_id" gorm:"not null"`
	UpdatedBy   *User       `json:"updated_by,omitempty" gorm:"foreignKey:UpdatedByID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
