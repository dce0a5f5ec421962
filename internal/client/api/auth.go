package api

import (
	"context"
	"net/http"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
)

// Register creates a new account. The backend responds with an issued
// bearer credential and the created user's snapshot.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a bearer token and a user snapshot.
func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/login", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me resolves the stored bearer credential into the current user.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
