package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const DefaultThemePreset = "default"

// ThemeOverrides is a free-form bag of presentation overrides (primary color,
// fonts, ...). Consumers decide what keys mean.
type ThemeOverrides map[string]interface{}

func (o ThemeOverrides) Value() (driver.Value, error) {
	if o == nil {
		return json.Marshal(ThemeOverrides{})
	}
	return json.Marshal(o)
}

func (o *ThemeOverrides) Scan(value interface{}) error {
	if value == nil {
		*o = ThemeOverrides{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return errors.New(fmt.Sprint("cannot scan theme overrides from ", value))
	}
}

// Theme is a singleton: the site-wide preset plus overrides served to
// external renderers.
type Theme struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Preset    string         `json:"preset" gorm:"not null;default:'default'"`
	Overrides ThemeOverrides `json:"overrides" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
