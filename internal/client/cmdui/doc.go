// Package cmdui provides the interactive command-line client for the
// blogging platform.
//
// It wires configuration, the local state database, the API gateway, and
// the session manager into an interactive REPL offering the product's
// screens as commands. Typical flow: resolve the stored session, show the
// feed, and execute user commands.
//
// Key commands:
//   - register / login / logout / whoami
//   - feed — the landing view of published stories
//   - read <slug> — the story reader
//   - profile <username>, follow / unfollow — the profile view
//   - write, edit <id>, delete <id> — the story editor
//   - update — edit the own profile fields
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cmdui
