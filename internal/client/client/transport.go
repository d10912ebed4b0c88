package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// TokenSource yields the tokens of the current session. An error means no
// usable session; the request then goes out unauthenticated.
type TokenSource interface {
	Current(ctx context.Context) (models.TokenSet, error)
}

// authTransport sets Authorization and X-Request-ID on every request.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
	newID  func() string
}

func newAuthTransport(base http.RoundTripper, tokens TokenSource) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, tokens: tokens, newID: uuid.NewString}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	if r.Header.Get(common.RequestIDHeader) == "" {
		r.Header.Set(common.RequestIDHeader, t.newID())
	}

	if t.tokens != nil && r.Header.Get(common.AuthorizationHeader) == "" {
		if ts, err := t.tokens.Current(r.Context()); err == nil {
			if tok := bearerFor(r.URL.Path, ts); tok != "" {
				r.Header.Set(common.AuthorizationHeader, "Bearer "+tok)
			}
		}
	}

	return t.base.RoundTrip(r)
}

// bearerFor picks the token a backend path expects: the identity token for
// storage operations under /api/, the access token for /auth/, and either
// one elsewhere.
func bearerFor(path string, ts models.TokenSet) string {
	switch {
	case strings.HasPrefix(path, "/api/"):
		return ts.IDToken
	case strings.HasPrefix(path, "/auth/"):
		return ts.AccessToken
	case ts.AccessToken != "":
		return ts.AccessToken
	default:
		return ts.IDToken
	}
}
