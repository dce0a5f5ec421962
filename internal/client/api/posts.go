package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
)

// ListPosts lists published posts, optionally narrowed to a single author.
func (c *HTTPClient) ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	page := filter.Page.withDefaults()
	query := url.Values{}
	if filter.AuthorID != nil {
		query.Set("author_id", filter.AuthorID.String())
	}
	query.Set("offset", strconv.Itoa(page.Offset))
	query.Set("limit", strconv.Itoa(page.Limit))

	var posts []models.Post
	if err := c.Do(ctx, http.MethodGet, "/posts?"+query.Encode(), nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostBySlug fetches a single post by its URL slug.
func (c *HTTPClient) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := c.Do(ctx, http.MethodGet, "/posts/slug/"+url.PathEscape(slug), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Post fetches a single post by id.
func (c *HTTPClient) Post(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := c.Do(ctx, http.MethodGet, "/posts/"+id.String(), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a story. The backend generates the slug and, when
// Published is set, stamps the publish time.
func (c *HTTPClient) CreatePost(ctx context.Context, req PostCreate) (*models.Post, error) {
	var post models.Post
	if err := c.Do(ctx, http.MethodPost, "/posts", req, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost patches the given fields of an existing story.
func (c *HTTPClient) UpdatePost(ctx context.Context, id uuid.UUID, req PostUpdate) (*models.Post, error) {
	var post models.Post
	if err := c.Do(ctx, http.MethodPatch, "/posts/"+id.String(), req, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a story owned by the current user.
func (c *HTTPClient) DeletePost(ctx context.Context, id uuid.UUID) error {
	return c.Do(ctx, http.MethodDelete, "/posts/"+id.String(), nil, nil, nil)
}
