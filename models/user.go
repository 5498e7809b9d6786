package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleContributor UserRole = "contributor"
	RoleMaintainer  UserRole = "maintainer"
	RoleOwner       UserRole = "owner"
)

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Name      string         `json:"name"`
	Password  string         `json:"-" gorm:"not null"`
	Role      UserRole       `json:"role" gorm:"default:'contributor'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Actor is the verified identity a request acts as. Handlers build it from the
// auth middleware and pass it down explicitly; services never read ambient
// session state.
type Actor struct {
	ID   uint
	Role UserRole
}
