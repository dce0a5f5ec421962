package cmdui

import (
	"context"
	"fmt"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/api"
)

// Feed shows the landing view: the chronological listing of published
// stories.
func (a *App) Feed(ctx context.Context) error {
	posts, err := a.api.Feed(ctx, api.Page{})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No stories yet.")
		return nil
	}
	a.printPosts(posts)
	return nil
}
