package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"
)

const pingTimeout = 3 * time.Second

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Ask(ctx context.Context, question string) error
	History(ctx context.Context) error
	Export(ctx context.Context, dest string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the devopschat CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - ask [question] - ask a question; without text a multi-line prompt opens
//	  - history        - print the conversation so far
//	  - export [file]  - get a download link, optionally saving the transcript
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("devops %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if ctx.Err() != nil {
			return
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: ask, history, export, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "ask", "history", "export", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			switch cmd {
			case "ask":
				question := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))
				report(a.Ask(ctx, question))
			case "history":
				report(a.History(ctx))
			case "export":
				var dest string
				if len(parts) > 1 {
					dest = parts[1]
				}
				report(a.Export(ctx, dest))
			case "logout":
				report(a.Logout(ctx))
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
