package models

import "time"

// RegisterRequest carries a public signup. There is deliberately no role
// field; registration always yields a contributor.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Slug  string        `json:"slug" binding:"required"`
	Title string        `json:"title" binding:"required,min=1,max=255"`
	Body  *DocumentNode `json:"body,omitempty"`
}

// UpdateArticleRequest carries a draft edit. A title change updates the
// article row directly (titles are not versioned); a body appends a new draft
// version. Both are optional.
type UpdateArticleRequest struct {
	Title *string       `json:"title,omitempty"`
	Body  *DocumentNode `json:"body,omitempty"`
}

// ArticleResponse is an article plus the current draft body, the shape the
// editor works against.
type ArticleResponse struct {
	Article
	Body DocumentNode `json:"body"`
}

type PublicArticleListItem struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PublicArticleResponse struct {
	Slug      string       `json:"slug"`
	Title     string       `json:"title"`
	Body      DocumentNode `json:"body"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type UpdateThemeRequest struct {
	Preset    *string         `json:"preset,omitempty"`
	Overrides *ThemeOverrides `json:"overrides,omitempty"`
}

type AuditListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=50"`
}
