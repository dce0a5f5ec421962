package models

import (
	"time"

	"github.com/google/uuid"
)

// PostAuthor is the author summary embedded in post payloads.
type PostAuthor struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
}

// Name returns the author's display name, falling back to the username.
func (a *PostAuthor) Name() string {
	if a.DisplayName != nil && *a.DisplayName != "" {
		return *a.DisplayName
	}
	return a.Username
}

// Post is a story as the backend returns it. The client forwards post
// bodies opaquely and never validates or transforms their content.
type Post struct {
	ID            uuid.UUID   `json:"id"`
	AuthorID      uuid.UUID   `json:"author_id"`
	Author        *PostAuthor `json:"author"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Body          string      `json:"body"`
	BodyFormat    string      `json:"body_format"`
	CoverImageURL *string     `json:"cover_image_url"`
	PublishedAt   *time.Time  `json:"published_at"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Published reports whether the post has been published.
func (p *Post) Published() bool {
	return p.PublishedAt != nil
}
