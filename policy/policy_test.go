package policy_test

import (
	"testing"

	"tiny-cms/models"
	"tiny-cms/policy"

	"github.com/stretchr/testify/assert"
)

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name      string
		role      models.UserRole
		actorID   uint
		creatorID uint
		want      bool
	}{
		{"maintainer edits anything", models.RoleMaintainer, 1, 2, true},
		{"owner edits anything", models.RoleOwner, 1, 2, true},
		{"contributor edits own", models.RoleContributor, 3, 3, true},
		{"contributor cannot edit others", models.RoleContributor, 3, 4, false},
		{"unknown role denied", models.UserRole("admin"), 5, 5, false},
		{"empty role denied", models.UserRole(""), 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanEdit(tt.role, tt.actorID, tt.creatorID))
		})
	}
}

func TestCanApproveOrPublish(t *testing.T) {
	assert.True(t, policy.CanApproveOrPublish(models.RoleMaintainer))
	assert.True(t, policy.CanApproveOrPublish(models.RoleOwner))
	assert.False(t, policy.CanApproveOrPublish(models.RoleContributor))
	assert.False(t, policy.CanApproveOrPublish(models.UserRole("editor")))
}

func TestScopedToCreator(t *testing.T) {
	assert.True(t, policy.ScopedToCreator(models.RoleContributor))
	assert.False(t, policy.ScopedToCreator(models.RoleMaintainer))
	assert.False(t, policy.ScopedToCreator(models.RoleOwner))
}
