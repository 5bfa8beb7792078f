package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads lines from the scanner, takes the first token as the
// command, and dispatches to a. Commands of the users screen are refused
// while unauthenticated, mirroring a route guard: the user is pointed back
// to login instead. The loop ends on EOF or "exit"/"quit".
//
// Handler errors are reported and swallowed; the loop itself never dies on a
// command failure.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ud (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		// The auth gate. A protected command without a session redirects
		// to the login prompt.
		switch cmd {
		case "l", "list", "page", "search", "edit", "delete", "refresh", "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in. Type 'login' to continue.")
				continue
			}
		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Type 'logout' first.")
				continue
			}
		}

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, page <n>, search [term], edit <id>, delete <id>, refresh, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "page":
			err = a.Page(ctx, args)

		case "search":
			err = a.Search(ctx, args)

		case "edit":
			err = a.Edit(ctx, args)

		case "delete":
			err = a.Delete(ctx, args)

		case "refresh":
			err = a.Refresh(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
