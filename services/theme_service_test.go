package services_test

import (
	"testing"

	"tiny-cms/models"
	"tiny-cms/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewThemeService(db)

	theme, err := svc.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultThemePreset, theme.Preset)
	assert.NotNil(t, theme.Overrides)

	// Singleton: a second read returns the same row.
	again, err := svc.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, theme.ID, again.ID)
}

func TestThemeUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewThemeService(db)
	owner := newTestUser(t, db, "owner@example.com", models.RoleOwner)

	preset := "midnight"
	overrides := models.ThemeOverrides{"primaryColor": "#112233"}
	updated, err := svc.UpdateTheme(owner, models.UpdateThemeRequest{
		Preset:    &preset,
		Overrides: &overrides,
	})
	require.NoError(t, err)
	assert.Equal(t, "midnight", updated.Preset)
	assert.Equal(t, "#112233", updated.Overrides["primaryColor"])

	// Partial update keeps the untouched half.
	newOverrides := models.ThemeOverrides{"fontFamily": "serif"}
	updated, err = svc.UpdateTheme(owner, models.UpdateThemeRequest{Overrides: &newOverrides})
	require.NoError(t, err)
	assert.Equal(t, "midnight", updated.Preset)
	assert.Equal(t, "serif", updated.Overrides["fontFamily"])
}

func TestThemeUpdateForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewThemeService(db)
	writer := newTestUser(t, db, "writer@example.com", models.RoleContributor)

	preset := "midnight"
	_, err := svc.UpdateTheme(writer, models.UpdateThemeRequest{Preset: &preset})
	var forbidden models.ErrorForbidden
	require.ErrorAs(t, err, &forbidden)
}
