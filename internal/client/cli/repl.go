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
	AddTransaction(ctx context.Context) error
	ListTransactions(ctx context.Context) error
	EditTransaction(ctx context.Context) error
	DeleteTransaction(ctx context.Context) error
	AddBudget(ctx context.Context) error
	ListBudgets(ctx context.Context) error
	ShowDashboard(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the mymoney CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user, as are commands that require a login while logged out.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - add            — record a transaction
//	  - list           — list transactions
//	  - edit           — edit a transaction (interactive id prompt)
//	  - delete         — delete a transaction (interactive id prompt)
//	  - addbudget      — define a monthly category budget
//	  - budgets        — list budgets with current-month consumption
//	  - dashboard      — show the aggregate dashboard
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mymoney %s> ", statusFn()))
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
				printlnFn("Available commands: add, (l)ist, edit, delete, addbudget, budgets, dashboard, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "add", "l", "list", "edit", "delete", "addbudget", "budgets", "dashboard", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			switch cmd {
			case "add":
				_ = a.AddTransaction(ctx)
			case "l", "list":
				_ = a.ListTransactions(ctx)
			case "edit":
				_ = a.EditTransaction(ctx)
			case "delete":
				_ = a.DeleteTransaction(ctx)
			case "addbudget":
				_ = a.AddBudget(ctx)
			case "budgets":
				_ = a.ListBudgets(ctx)
			case "dashboard":
				_ = a.ShowDashboard(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
