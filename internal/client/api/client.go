package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
)

// DefaultLimit is the page size used when a caller does not ask for one.
const DefaultLimit = 20

// Page selects a window of a listing. A zero value means the first
// DefaultLimit items.
type Page struct {
	Offset int
	Limit  int
}

func (p Page) withDefaults() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Client is the operation table of the backend as the product consumes it.
// The set is fixed: each method wraps exactly one endpoint and no method
// combines multiple backend calls.
type Client interface {
	// Auth.
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Me(ctx context.Context) (*models.User, error)

	// Users.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserPosts(ctx context.Context, userID uuid.UUID, page Page) ([]models.Post, error)
	Follow(ctx context.Context, userID uuid.UUID) error
	Unfollow(ctx context.Context, userID uuid.UUID) error
	UpdateMe(ctx context.Context, req UserUpdate) (*models.User, error)

	// Posts.
	ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error)
	PostBySlug(ctx context.Context, slug string) (*models.Post, error)
	Post(ctx context.Context, id uuid.UUID) (*models.Post, error)
	CreatePost(ctx context.Context, req PostCreate) (*models.Post, error)
	UpdatePost(ctx context.Context, id uuid.UUID, req PostUpdate) (*models.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	// Feed.
	Feed(ctx context.Context, page Page) ([]models.Post, error)
}
