// Package cli provides the interactive mymoney command-line client.
//
// It wires configuration, the local session database, the remote store, and
// an interactive REPL. On startup a previously persisted login is restored,
// so the user stays signed in across runs until an explicit logout.
//
// Key features:
//   - Register / Login / Logout against the remote user collection
//   - Record, list, edit, and delete income and expense transactions
//   - Define monthly category budgets and review their consumption
//   - An aggregate dashboard: totals, per-category expenses, monthly
//     trends, and budget-versus-actual comparison
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
