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
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Verify(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ListEvents(ctx context.Context) error
	ShowEvent(ctx context.Context, id string) error
	AddEvent(ctx context.Context) error
	ListClubs(ctx context.Context) error
	AddClub(ctx context.Context) error
	RSVP(ctx context.Context, id string) error
	Dashboard(ctx context.Context) error
	Upload(ctx context.Context, path string) error
}

// runREPL starts a simple read-eval-print loop for the CampusLink CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("campuslink %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: events, event <id>, addevent, clubs, addclub, rsvp <event-id>, dashboard, upload <file>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, verify, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.SignUp(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "events":
			_ = a.ListEvents(ctx)

		case "event":
			if len(args) == 0 {
				printlnFn("Usage: event <id>")
				continue
			}
			_ = a.ShowEvent(ctx, args[0])

		case "addevent":
			_ = a.AddEvent(ctx)

		case "clubs":
			_ = a.ListClubs(ctx)

		case "addclub":
			_ = a.AddClub(ctx)

		case "rsvp":
			if len(args) == 0 {
				printlnFn("Usage: rsvp <event-id>")
				continue
			}
			_ = a.RSVP(ctx, args[0])

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <file>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
