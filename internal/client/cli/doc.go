// Package cli provides the interactive case intake command-line client.
//
// It wires configuration, the API client, and an interactive REPL that
// walks a customer-service operator through a case submission: collect the
// case record, pick damage photos, compress them locally, and submit.
//
// Key features:
//   - Guided case submission (record + photos) with a confirmation step
//   - Concurrent client-side photo compression
//   - Connectivity watcher switching between online/offline display
//   - Configuration-check email trigger
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
