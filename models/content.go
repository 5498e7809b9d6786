package models

import "time"

// Content is an immutable document snapshot. Created once, never updated;
// every version gets its own row, published versions copy the draft body by
// value so later edits can never alter what is already published.
type Content struct {
	ID        string       `json:"id" gorm:"primarykey"`
	Body      DocumentNode `json:"body" gorm:"type:jsonb;not null"`
	CreatedAt time.Time    `json:"created_at"`
}
