package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if user := a.auth.Username(ctx); user != "" {
		s = user + " "
	}
	if mode := a.Mode(); mode != "" {
		s += string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive session until the user exits or input ends.
// checkInterval drives the connectivity watcher.
func (a *App) Root(ctx context.Context, checkInterval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to the gallery CLI (type 'help' for commands)")
	if !a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, "You are not logged in. Type 'login' to sign in or 'register' to create an account.")
	}

	go a.StartOnlineStatusWatcher(ctx, checkInterval)

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader, a.out)
}
