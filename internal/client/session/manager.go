package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

// Config describes the hosted identity provider.
type Config struct {
	// Domain is the provider base URL, e.g. https://gallery.auth.eu-west-1.amazoncognito.com.
	Domain      string
	ClientID    string
	RedirectURI string
	Scope       string
	// LogoutURI is where the provider sends the browser after sign-out.
	// When empty, Logout only navigates to the login route.
	LogoutURI string
}

// Exchanger trades an authorization code for tokens.
type Exchanger interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (models.TokenSet, error)
}

// Purger drops cached responses that belong to the session.
type Purger interface {
	Purge(ctx context.Context) error
}

type Manager struct {
	cfg       Config
	store     Store
	exchanger Exchanger
	nav       Navigator
	cache     Purger
	log       logging.Logger
	now       func() time.Time
}

type Option func(*Manager)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithCache makes LogoutLocal purge c.
func WithCache(c Purger) Option {
	return func(m *Manager) { m.cache = c }
}

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

func NewManager(cfg Config, store Store, ex Exchanger, nav Navigator, opts ...Option) *Manager {
	m := &Manager{
		cfg:       cfg,
		store:     store,
		exchanger: ex,
		nav:       nav,
		log:       logging.Nop{},
		now:       time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// AuthorizeURL is the provider's authorization endpoint for the
// configured client. The parameter order is fixed.
func (m *Manager) AuthorizeURL() string {
	return m.endpoint("/oauth2/authorize",
		"response_type", "code",
		"client_id", m.cfg.ClientID,
		"redirect_uri", m.cfg.RedirectURI,
		"scope", m.cfg.Scope,
	)
}

// LogoutURL is the provider's sign-out endpoint, or "" when no logout URI
// is configured.
func (m *Manager) LogoutURL() string {
	if m.cfg.LogoutURI == "" {
		return ""
	}
	return m.endpoint("/logout",
		"client_id", m.cfg.ClientID,
		"logout_uri", m.cfg.LogoutURI,
	)
}

func (m *Manager) endpoint(path string, kv ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(m.cfg.Domain, "/"))
	b.WriteString(path)
	for i := 0; i+1 < len(kv); i += 2 {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(kv[i])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[i+1]))
	}
	return b.String()
}

// RedirectToLogin starts the login flow by navigating to AuthorizeURL.
func (m *Manager) RedirectToLogin(ctx context.Context) error {
	return m.nav.Navigate(ctx, m.AuthorizeURL())
}

// ExchangeCodeForTokens performs exactly one exchange call. Any failure is
// an *ExchangeError. The store is not touched; see Persist.
func (m *Manager) ExchangeCodeForTokens(ctx context.Context, code string) (models.TokenSet, error) {
	if code == "" {
		return models.TokenSet{}, &ExchangeError{Err: ErrMissingCode}
	}

	tokens, err := m.exchanger.ExchangeCode(ctx, code, m.cfg.RedirectURI)
	if err != nil {
		m.log.Warn(ctx, "code exchange rejected", "error", err)
		return models.TokenSet{}, &ExchangeError{Err: err}
	}
	if tokens.IDToken == "" {
		return models.TokenSet{}, &ExchangeError{Err: ErrIncompleteTokens}
	}
	return tokens, nil
}

// Persist stores tokens obtained from ExchangeCodeForTokens. A missing
// Username is taken from the identity token, e-mail first.
func (m *Manager) Persist(ctx context.Context, tokens models.TokenSet) error {
	if tokens.Username == "" {
		tokens.Username = ParseIDToken(tokens.IDToken).DisplayName()
	}
	if err := m.store.Save(ctx, tokens); err != nil {
		return err
	}
	m.log.Info(ctx, "session stored", "user", tokens.Username)
	return nil
}

// EnsureFreshSession reports whether a valid session is stored and wipes
// the store when the identity token is missing, undecodable or expired.
func (m *Manager) EnsureFreshSession(ctx context.Context) (bool, error) {
	tokens, err := m.store.Load(ctx)
	if err != nil {
		return false, err
	}

	reason := checkIDToken(tokens.IDToken, m.now())
	if reason == nil {
		return true, nil
	}

	if tokens != (models.TokenSet{}) {
		m.log.Info(ctx, "stale session cleared", "user", tokens.Username, "reason", reason)
		if err := m.store.Clear(ctx); err != nil {
			return false, err
		}
	}
	return false, nil
}

// IsLoggedIn is EnsureFreshSession with storage errors treated as signed
// out.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	ok, err := m.EnsureFreshSession(ctx)
	if err != nil {
		m.log.Error(ctx, "session check failed", "error", err)
		return false
	}
	return ok
}

// Current returns the stored tokens of a fresh session, or
// common.ErrNoSession.
func (m *Manager) Current(ctx context.Context) (models.TokenSet, error) {
	ok, err := m.EnsureFreshSession(ctx)
	if err != nil {
		return models.TokenSet{}, err
	}
	if !ok {
		return models.TokenSet{}, common.ErrNoSession
	}
	return m.store.Load(ctx)
}

// Claims decodes the stored identity token for display.
func (m *Manager) Claims(ctx context.Context) models.IDClaims {
	tokens, err := m.store.Load(ctx)
	if err != nil {
		return models.IDClaims{}
	}
	return ParseIDToken(tokens.IDToken)
}

// LogoutLocal removes every session key. The cache purge is best effort
// and runs after the tokens are gone.
func (m *Manager) LogoutLocal(ctx context.Context) error {
	err := m.store.Clear(ctx)

	if m.cache != nil {
		if perr := m.cache.Purge(ctx); perr != nil {
			m.log.Warn(ctx, "cache purge failed", "error", perr)
		}
	}

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Logout signs out locally, then at the provider when a logout URI is
// configured, otherwise it returns to the login route.
func (m *Manager) Logout(ctx context.Context) error {
	localErr := m.LogoutLocal(ctx)

	target := m.LogoutURL()
	if target == "" {
		target = common.LoginRoute
	}
	navErr := m.nav.Navigate(ctx, target)

	return errors.Join(localErr, navErr)
}
