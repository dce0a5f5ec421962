package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
)

// UserByUsername fetches a user's public profile.
func (c *HTTPClient) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	path := "/users/by-username/" + url.PathEscape(username)
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserPosts lists a user's posts, newest first.
func (c *HTTPClient) UserPosts(ctx context.Context, userID uuid.UUID, page Page) ([]models.Post, error) {
	page = page.withDefaults()
	var posts []models.Post
	path := fmt.Sprintf("/users/%s/posts?offset=%d&limit=%d", userID, page.Offset, page.Limit)
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Follow makes the current user follow userID.
func (c *HTTPClient) Follow(ctx context.Context, userID uuid.UUID) error {
	return c.Do(ctx, http.MethodPost, "/users/me/follow/"+userID.String(), nil, nil, nil)
}

// Unfollow makes the current user unfollow userID.
func (c *HTTPClient) Unfollow(ctx context.Context, userID uuid.UUID) error {
	return c.Do(ctx, http.MethodDelete, "/users/me/follow/"+userID.String(), nil, nil, nil)
}

// UpdateMe patches the current user's profile fields and returns the
// updated snapshot.
func (c *HTTPClient) UpdateMe(ctx context.Context, req UserUpdate) (*models.User, error) {
	var user models.User
	if err := c.Do(ctx, http.MethodPatch, "/users/me", req, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
