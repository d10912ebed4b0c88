package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophgallery/internal/client/client"
	"github.com/dmitrijs2005/gophgallery/internal/client/services"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// command is one REPL verb.
type command struct {
	name    string
	usage   string
	summary string
	minArgs int
	// protected commands need a fresh session and trigger the login flow
	// when there is none.
	protected bool
	run       func(ctx context.Context, args []string) error
}

// execIface defines the minimal surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	dropSession(ctx context.Context)
	Login(ctx context.Context, args []string) error
	commands() []command
}

// runREPL starts the read–eval–print loop.
//
// Each line is split on whitespace; the first token selects the command and
// the rest are its arguments. The loop exits on EOF or when the user types
// "exit" or "quit". Command errors are reported and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	cmds := a.commands()
	byName := make(map[string]command, len(cmds))
	for _, c := range cmds {
		byName[c.name] = c
	}

	for {
		fmt.Fprintf(out, "gallery %s> ", statusFn())

		line, err := in.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		case "help":
			printHelp(ctx, a, cmds, out)
		default:
			c, ok := byName[name]
			if !ok {
				fmt.Fprintln(out, "Unknown command:", name)
				break
			}
			if len(args) < c.minArgs {
				fmt.Fprintln(out, "Usage:", c.usage)
				break
			}
			if err := dispatch(ctx, a, c, args); err != nil {
				fmt.Fprintln(out, "Error:", describe(err))
			}
		}

		if err != nil {
			return
		}
	}
}

// dispatch runs c, sending the user through login first when c is
// protected and the session is missing or expired.
func dispatch(ctx context.Context, a execIface, c command, args []string) error {
	if c.protected && !a.isLoggedIn(ctx) {
		if err := a.Login(ctx, nil); err != nil {
			return err
		}
	}

	err := c.run(ctx, args)
	if errors.Is(err, client.ErrUnauthorized) {
		a.dropSession(ctx)
	}
	return err
}

func printHelp(ctx context.Context, a execIface, cmds []command, out io.Writer) {
	loggedIn := a.isLoggedIn(ctx)

	fmt.Fprintln(out, "Available commands:")
	for _, c := range cmds {
		if c.protected && !loggedIn {
			continue
		}
		fmt.Fprintf(out, "  %-32s %s\n", c.usage, c.summary)
	}
	fmt.Fprintf(out, "  %-32s %s\n", "help", "show this list")
	fmt.Fprintf(out, "  %-32s %s\n", "exit", "leave the program")
}

// describe turns an error into the line shown to the user.
func describe(err error) string {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "your session was rejected, please log in again"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, common.ErrNoSession):
		return "not logged in"
	case errors.Is(err, common.ErrNotFound):
		return "not found"
	case errors.Is(err, services.ErrDownloadsDisabled):
		return "downloads are not configured (set GALLERY_S3_BUCKET)"
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	default:
		return err.Error()
	}
}
