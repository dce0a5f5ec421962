package cmdui

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/api"
)

// bodyFormatMarkdown is what the editor tags story bodies with. The client
// forwards bodies opaquely; the tag only tells the backend how to render.
const bodyFormatMarkdown = "markdown"

// Read shows a single story by its slug.
func (a *App) Read(ctx context.Context, slug string) error {
	post, err := a.api.PostBySlug(ctx, slug)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	a.printPost(post)
	return nil
}

// Write collects a new story and creates it, published or as a draft.
func (a *App) Write(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Tell your story:", a.out)
	if err != nil {
		return err
	}
	publish, err := GetYesNo(a.reader, "Publish immediately?", a.out)
	if err != nil {
		return err
	}

	post, err := a.api.CreatePost(ctx, api.PostCreate{
		Title:      title,
		Body:       body,
		BodyFormat: bodyFormatMarkdown,
		Published:  publish,
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if post.Published() {
		fmt.Fprintf(a.out, "Published: %s\n", post.Slug)
	} else {
		fmt.Fprintf(a.out, "Draft saved: %s\n", post.Slug)
	}
	return nil
}

// Edit patches an existing story. Empty answers leave fields untouched.
func (a *App) Edit(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		fmt.Fprintf(a.out, "error: invalid post id %q\n", id)
		return err
	}

	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "New body (empty to keep):", a.out)
	if err != nil {
		return err
	}

	var update api.PostUpdate
	if title != "" {
		update.Title = &title
	}
	if body != "" {
		update.Body = &body
	}

	publish, err := GetYesNo(a.reader, "Publish now?", a.out)
	if err != nil {
		return err
	}
	if publish {
		update.Published = &publish
	}

	post, err := a.api.UpdatePost(ctx, postID, update)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Updated: %s\n", post.Slug)
	return nil
}

// Delete removes one of the user's own stories.
func (a *App) Delete(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		fmt.Fprintf(a.out, "error: invalid post id %q\n", id)
		return err
	}

	if err := a.api.DeletePost(ctx, postID); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
