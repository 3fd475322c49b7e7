package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Read(ctx context.Context) error
	Mine(ctx context.Context) error
	Publish(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Comment(ctx context.Context) error
	Uncomment(ctx context.Context) error
	Like(ctx context.Context) error
	Drafts(ctx context.Context) error
	Discard(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the article CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands (list, read) work without authentication; everything
// that writes requires a login. Errors returned by command handlers are
// ignored here; handlers report their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("articles> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, read, mine, publish, edit, delete, comment, uncomment, like, drafts, discard, whoami, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, read, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "read":
			_ = a.Read(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "publish":
			_ = a.Publish(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "uncomment":
			_ = a.Uncomment(ctx)

		case "like":
			_ = a.Like(ctx)

		case "drafts":
			_ = a.Drafts(ctx)

		case "discard":
			_ = a.Discard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
