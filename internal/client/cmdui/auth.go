package cmdui

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, username, and password, and creates a new
// account. On success the session manager establishes the session and
// navigates to the feed.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, email, password, username); err != nil {
		a.presentAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().Name())
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// manager persists the token and navigates to the feed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		a.presentAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", a.session.User().Name())
	return nil
}

// Logout ends the session and purges the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the authenticated user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	a.printUser(user)
	return nil
}

// presentAuthError renders a login/register failure. Transport failures
// are rewritten into a hint to start the backend instead of exposing the
// raw error.
func (a *App) presentAuthError(err error) {
	if errors.Is(err, api.ErrUnavailable) {
		fmt.Fprintf(a.out, "Could not reach the server. Start the backend at %s\n", a.config.BaseURL)
		return
	}
	fmt.Fprintf(a.out, "error: %v\n", err)
}
