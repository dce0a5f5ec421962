package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
)

// Feed fetches the chronological listing of published posts for the
// landing view.
func (c *HTTPClient) Feed(ctx context.Context, page Page) ([]models.Post, error) {
	page = page.withDefaults()
	var posts []models.Post
	path := fmt.Sprintf("/feed?offset=%d&limit=%d", page.Offset, page.Limit)
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
