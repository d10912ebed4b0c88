package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword point to the interactive input helpers and
// are swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login opens the provider's sign-in page and waits for the redirect.
func (a *App) Login(ctx context.Context, _ []string) error {
	fmt.Fprintln(a.out, "Opening the sign-in page in your browser...")

	user, err := a.auth.Login(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user)
	return nil
}

// Logout forgets the local session and signs out at the provider when a
// logout page is configured.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Register creates an account and offers to confirm it right away.
func (a *App) Register(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, username, password, email); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created. A confirmation code was sent to %s.\n", email)

	code, err := getSimpleText(a.reader, "Enter the confirmation code (empty to confirm later with 'confirm <code>')", a.out)
	if err != nil || code == "" {
		return nil
	}
	return a.confirm(ctx, "", code)
}

// Confirm activates the pending account, or the one named by the second
// argument.
func (a *App) Confirm(ctx context.Context, args []string) error {
	var code, username string
	if len(args) > 0 {
		code = args[0]
	}
	if len(args) > 1 {
		username = args[1]
	}

	if code == "" {
		var err error
		if code, err = getSimpleText(a.reader, "Enter the confirmation code", a.out); err != nil {
			return err
		}
	}
	return a.confirm(ctx, username, code)
}

func (a *App) confirm(ctx context.Context, username, code string) error {
	if err := a.auth.Confirm(ctx, username, code); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account confirmed. You can now log in.")
	return nil
}

// Resend asks for a new confirmation code.
func (a *App) Resend(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	}
	if err := a.auth.ResendCode(ctx, username); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "A new confirmation code was sent.")
	return nil
}

func (a *App) Whoami(ctx context.Context, _ []string) error {
	if user := a.auth.Username(ctx); user != "" {
		fmt.Fprintln(a.out, "Logged in as", user)
		return nil
	}
	if user, ok := a.auth.PendingConfirmation(); ok {
		fmt.Fprintf(a.out, "Not logged in (%s awaits confirmation)\n", user)
		return nil
	}
	fmt.Fprintln(a.out, "Not logged in")
	return nil
}
