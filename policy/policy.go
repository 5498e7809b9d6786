// Package policy holds the access rules for articles as pure predicates.
// Both the read endpoints and the mutation endpoints go through these same
// functions; nothing here touches the store.
package policy

import "tiny-cms/models"

// CanEdit reports whether the actor may view the draft, edit or delete an
// article. Maintainers and owners may touch any article; contributors only
// their own.
func CanEdit(role models.UserRole, actorID, creatorID uint) bool {
	if role == models.RoleMaintainer || role == models.RoleOwner {
		return true
	}
	if role == models.RoleContributor {
		return actorID == creatorID
	}
	return false
}

// CanApproveOrPublish reports whether the actor may approve or publish.
func CanApproveOrPublish(role models.UserRole) bool {
	return role == models.RoleMaintainer || role == models.RoleOwner
}

// ScopedToCreator reports whether article listings must be narrowed to the
// actor's own articles.
func ScopedToCreator(role models.UserRole) bool {
	return role == models.RoleContributor
}
