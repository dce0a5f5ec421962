package cmdui

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. Tests replace it with a
// stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a lightweight
// stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context) error
	Read(ctx context.Context, slug string) error
	Write(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Profile(ctx context.Context, username string) error
	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
	UpdateProfile(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on a. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers present
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("medium %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, read <slug>, write, edit <id>, delete <id>, profile <username>, follow <username>, unfollow <username>, update, whoami, logout, exit")
			} else {
				printlnFn("Available commands: feed, read <slug>, profile <username>, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "read":
			if arg == "" {
				printlnFn("Usage: read <slug>")
				continue
			}
			_ = a.Read(ctx, arg)

		case "write":
			_ = a.Write(ctx)

		case "edit":
			if arg == "" {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, arg)

		case "delete":
			if arg == "" {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, arg)

		case "profile":
			if arg == "" {
				printlnFn("Usage: profile <username>")
				continue
			}
			_ = a.Profile(ctx, arg)

		case "follow":
			if arg == "" {
				printlnFn("Usage: follow <username>")
				continue
			}
			_ = a.Follow(ctx, arg)

		case "unfollow":
			if arg == "" {
				printlnFn("Usage: unfollow <username>")
				continue
			}
			_ = a.Unfollow(ctx, arg)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
