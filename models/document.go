package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// DocumentNode is one node of the structured article body: a typed tree with a
// "doc" root and ordered block children, matching what the rich-text editor
// produces. The core never interprets node types; unknown types and attrs pass
// through untouched so new editor node kinds need no server change.
// Content uses omitzero, not omitempty: leaf nodes (nil) drop the key, while
// an empty container keeps an explicit "content": [] on the wire.
type DocumentNode struct {
	Type    string                 `json:"type"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Marks   []DocumentMark         `json:"marks,omitempty"`
	Content []DocumentNode         `json:"content,omitzero"`
	Text    string                 `json:"text,omitempty"`
}

type DocumentMark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// EmptyDocument is the default body for articles created without one: a doc
// holding a single empty paragraph.
func EmptyDocument() DocumentNode {
	return DocumentNode{
		Type:    "doc",
		Content: []DocumentNode{{Type: "paragraph", Content: []DocumentNode{}}},
	}
}

// IsZero reports whether the node is the zero value (no body supplied).
func (d DocumentNode) IsZero() bool {
	return d.Type == "" && d.Text == "" && len(d.Content) == 0 && len(d.Attrs) == 0 && len(d.Marks) == 0
}

// Value serializes the tree for the jsonb column.
func (d DocumentNode) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan restores the tree from the jsonb column.
func (d *DocumentNode) Scan(value interface{}) error {
	if value == nil {
		*d = DocumentNode{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New(fmt.Sprint("cannot scan document body from ", value))
	}
}
