package api

import (
	"github.com/google/uuid"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by both login and registration: the issued
// bearer credential plus a snapshot of the authenticated user.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// UserUpdate is the body of PATCH /users/me. Nil fields are left untouched
// by the backend.
type UserUpdate struct {
	DisplayName *string `json:"display_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// PostCreate is the body of POST /posts. Published is always serialized so
// an explicit draft (published=false) reaches the backend as such.
type PostCreate struct {
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	BodyFormat    string  `json:"body_format,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	Published     bool    `json:"published"`
}

// PostUpdate is the body of PATCH /posts/{id}. Nil fields are left
// untouched by the backend.
type PostUpdate struct {
	Title         *string `json:"title,omitempty"`
	Body          *string `json:"body,omitempty"`
	BodyFormat    *string `json:"body_format,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	Published     *bool   `json:"published,omitempty"`
}

// PostFilter narrows GET /posts. AuthorID is included in the query only
// when set; paging falls back to the first DefaultLimit items.
type PostFilter struct {
	AuthorID *uuid.UUID
	Page     Page
}
