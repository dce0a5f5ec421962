package cmdui

import (
	"context"
	"fmt"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/api"
)

// Profile shows a user's public profile and their stories.
func (a *App) Profile(ctx context.Context, username string) error {
	user, err := a.api.UserByUsername(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	a.printUser(user)

	posts, err := a.api.UserPosts(ctx, user.ID, api.Page{})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if len(posts) > 0 {
		fmt.Fprintln(a.out, "Stories:")
		a.printPosts(posts)
	}
	return nil
}

// Follow makes the current user follow the named user.
func (a *App) Follow(ctx context.Context, username string) error {
	user, err := a.api.UserByUsername(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if err := a.api.Follow(ctx, user.ID); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Following %s\n", user.Name())
	return nil
}

// Unfollow makes the current user unfollow the named user.
func (a *App) Unfollow(ctx context.Context, username string) error {
	user, err := a.api.UserByUsername(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if err := a.api.Unfollow(ctx, user.ID); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Unfollowed %s\n", user.Name())
	return nil
}

// UpdateProfile patches the own profile fields. Empty answers leave fields
// untouched.
func (a *App) UpdateProfile(ctx context.Context) error {
	displayName, err := getSimpleText(a.reader, "Display name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	bio, err := GetMultiline(a.reader, "Bio (empty to keep):", a.out)
	if err != nil {
		return err
	}
	avatarURL, err := getSimpleText(a.reader, "Avatar URL (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var update api.UserUpdate
	if displayName != "" {
		update.DisplayName = &displayName
	}
	if bio != "" {
		update.Bio = &bio
	}
	if avatarURL != "" {
		update.AvatarURL = &avatarURL
	}

	user, err := a.api.UpdateMe(ctx, update)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	a.printUser(user)
	return nil
}
