package cmdui

import (
	"fmt"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
)

func (a *App) printPosts(posts []models.Post) {
	for _, post := range posts {
		author := ""
		if post.Author != nil {
			author = " by " + post.Author.Name()
		}
		status := ""
		if !post.Published() {
			status = " [draft]"
		}
		fmt.Fprintf(a.out, "  %s%s%s\n    slug: %s  id: %s\n", post.Title, author, status, post.Slug, post.ID)
	}
}

func (a *App) printPost(post *models.Post) {
	fmt.Fprintf(a.out, "%s\n", post.Title)
	if post.Author != nil {
		fmt.Fprintf(a.out, "by %s", post.Author.Name())
		if post.PublishedAt != nil {
			fmt.Fprintf(a.out, " on %s", post.PublishedAt.Format("Jan 2, 2006"))
		}
		fmt.Fprintln(a.out)
	}
	fmt.Fprintf(a.out, "\n%s\n", post.Body)
}

func (a *App) printUser(user *models.User) {
	fmt.Fprintf(a.out, "%s (@%s)\n", user.Name(), user.Username)
	if user.Bio != nil && *user.Bio != "" {
		fmt.Fprintln(a.out, *user.Bio)
	}
	fmt.Fprintf(a.out, "joined %s\n", user.CreatedAt.Format("Jan 2006"))
}
