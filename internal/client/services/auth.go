// Package services contains the application services of the gallery CLI.
// This file defines the authentication service: browser based login through
// the hosted provider, logout, sign-up with e-mail confirmation, and the
// liveness check.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/client/callback"
	"github.com/dmitrijs2005/gophgallery/internal/client/client"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/client/session"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

// ErrNoPendingConfirmation means Confirm or ResendCode had no username and
// no registration is waiting for confirmation.
var ErrNoPendingConfirmation = errors.New("no registration awaiting confirmation")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: open the provider's sign-in page, wait for the redirect and
//     store the session. Any failure leaves no token behind.
//   - CompleteLogin: the second half of Login for a code obtained elsewhere.
//   - Logout / LogoutLocal: forget the session, optionally at the provider.
//   - Register / Confirm / ResendCode: account sign-up.
//   - IsLoggedIn: the strict, self-healing session check.
type AuthService interface {
	Login(ctx context.Context) (string, error)
	CompleteLogin(ctx context.Context, code string) (string, error)
	Logout(ctx context.Context) error
	LogoutLocal(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	Username(ctx context.Context) string

	Register(ctx context.Context, username, password, email string) error
	Confirm(ctx context.Context, username, code string) error
	ResendCode(ctx context.Context, username string) error
	PendingConfirmation() (string, bool)

	Ping(ctx context.Context) error
}

// SessionManager is the part of *session.Manager the services use.
type SessionManager interface {
	RedirectToLogin(ctx context.Context) error
	ExchangeCodeForTokens(ctx context.Context, code string) (models.TokenSet, error)
	Persist(ctx context.Context, tokens models.TokenSet) error
	IsLoggedIn(ctx context.Context) bool
	Current(ctx context.Context) (models.TokenSet, error)
	Claims(ctx context.Context) models.IDClaims
	LogoutLocal(ctx context.Context) error
	Logout(ctx context.Context) error
}

// CallbackListener receives one provider redirect.
type CallbackListener interface {
	Start() error
	Wait(ctx context.Context) (callback.Result, error)
	Shutdown(ctx context.Context) error
}

// ListenerFactory returns a fresh listener for each login attempt.
type ListenerFactory func() (CallbackListener, error)

type authService struct {
	client      client.Client
	session     SessionManager
	newListener ListenerFactory
	pending     *session.Pending
	timeout     time.Duration
	log         logging.Logger
}

// NewAuthService wires the service. loginTimeout bounds the wait for the
// browser redirect.
func NewAuthService(c client.Client, sm SessionManager, newListener ListenerFactory, loginTimeout time.Duration, log logging.Logger) AuthService {
	return &authService{
		client:      c,
		session:     sm,
		newListener: newListener,
		pending:     &session.Pending{},
		timeout:     loginTimeout,
		log:         log,
	}
}

func (a *authService) Login(ctx context.Context) (string, error) {
	l, err := a.newListener()
	if err != nil {
		return "", err
	}
	if err := l.Start(); err != nil {
		return "", err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = l.Shutdown(shutdownCtx)
	}()

	if err := a.session.RedirectToLogin(ctx); err != nil {
		return "", fmt.Errorf("redirect to login: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	res, err := l.Wait(waitCtx)
	if err != nil {
		return "", fmt.Errorf("waiting for sign-in: %w", err)
	}
	if res.Err != nil {
		a.clearPartial(ctx)
		return "", fmt.Errorf("sign-in failed: %w", res.Err)
	}

	return a.CompleteLogin(ctx, res.Code)
}

func (a *authService) CompleteLogin(ctx context.Context, code string) (string, error) {
	tokens, err := a.session.ExchangeCodeForTokens(ctx, code)
	if err != nil {
		a.clearPartial(ctx)
		return "", err
	}

	if err := a.session.Persist(ctx, tokens); err != nil {
		a.clearPartial(ctx)
		return "", fmt.Errorf("store session: %w", err)
	}

	user := a.Username(ctx)
	a.log.Info(ctx, "logged in", "user", user)
	return user, nil
}

// clearPartial wipes whatever a failed login may have left behind.
func (a *authService) clearPartial(ctx context.Context) {
	if err := a.session.LogoutLocal(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear session after login failure", "error", err)
	}
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) LogoutLocal(ctx context.Context) error {
	return a.session.LogoutLocal(ctx)
}

func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.session.IsLoggedIn(ctx)
}

// Username is the stored display name of a fresh session, falling back to
// the identity token claims. Empty when signed out.
func (a *authService) Username(ctx context.Context) string {
	tokens, err := a.session.Current(ctx)
	if err != nil {
		return ""
	}
	if tokens.Username != "" {
		return tokens.Username
	}
	return a.session.Claims(ctx).DisplayName()
}

func (a *authService) Register(ctx context.Context, username, password, email string) error {
	if err := a.client.Register(ctx, username, password, email); err != nil {
		return err
	}
	a.pending.Set(username)
	return nil
}

func (a *authService) Confirm(ctx context.Context, username, code string) error {
	username, err := a.pendingUser(username)
	if err != nil {
		return err
	}
	if err := a.client.Confirm(ctx, username, code); err != nil {
		return err
	}
	a.pending.Clear()
	return nil
}

func (a *authService) ResendCode(ctx context.Context, username string) error {
	username, err := a.pendingUser(username)
	if err != nil {
		return err
	}
	return a.client.ResendCode(ctx, username)
}

func (a *authService) pendingUser(username string) (string, error) {
	if username != "" {
		return username, nil
	}
	if u, ok := a.pending.Get(); ok {
		return u, nil
	}
	return "", ErrNoPendingConfirmation
}

func (a *authService) PendingConfirmation() (string, bool) {
	return a.pending.Get()
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
