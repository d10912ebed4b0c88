// Package cli provides the interactive gallery command-line client.
//
// The REPL reads one command per line and dispatches it to App. Commands
// that touch the user's images are protected: when the stored session is
// missing or expired the user is sent through the browser login first and
// the command runs afterwards. A background watcher pings the backend and
// toggles the online/offline marker shown in the prompt.
//
// The REPL is started via App.Root(ctx, interval), which blocks until the
// user exits. See App, StartOnlineStatusWatcher and runREPL for details.
package cli
