package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it;
// tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, title string) error
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
//	Not logged in:
//	  - help           - show available commands
//	  - signup         - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - (l)ist         - show tasks
//	  - add <title>    - add a task
//	  - toggle <id>    - mark a task done / not done
//	  - delete <id>    - remove a task
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Handlers render their own errors, so the returned values are ignored here.
// The loop ends on EOF, a read error, context cancellation or "exit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("todo%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add <title>, toggle <id>, delete <id>, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx, rest)

		case "toggle":
			if rest == "" {
				printlnFn("Usage: toggle <id>")
				continue
			}
			_ = a.Toggle(ctx, rest)

		case "delete":
			if rest == "" {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, rest)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
