// Package cli provides the interactive gophtodo command-line client.
//
// It wires configuration, the key/value backend, the account and task
// services and a REPL. Every result is rendered as a short "[Title] message"
// dialog.
//
// Commands:
//   - signup / login / logout
//   - list, add <title>, toggle <id>, delete <id>
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// stdin is closed.
package cli
