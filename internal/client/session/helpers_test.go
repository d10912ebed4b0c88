package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func idToken(t *testing.T, exp time.Time) string {
	return signToken(t, jwt.MapClaims{
		"sub":              "0a1b2c",
		"email":            "alice@example.com",
		"cognito:username": "alice",
		"exp":              exp.Unix(),
	})
}

type fakeExchanger struct {
	tokens   models.TokenSet
	err      error
	calls    int
	gotCode  string
	gotRedir string
}

func (f *fakeExchanger) ExchangeCode(_ context.Context, code, redirectURI string) (models.TokenSet, error) {
	f.calls++
	f.gotCode = code
	f.gotRedir = redirectURI
	return f.tokens, f.err
}

type recordingNavigator struct {
	targets []string
	err     error
}

func (n *recordingNavigator) Navigate(_ context.Context, target string) error {
	n.targets = append(n.targets, target)
	return n.err
}

type fakePurger struct {
	calls int
	err   error
}

func (p *fakePurger) Purge(context.Context) error {
	p.calls++
	return p.err
}

// writeCountingStore wraps a store and counts mutations.
type writeCountingStore struct {
	Store
	saves, clears int
	loadErr       error
	clearErr      error
}

func (s *writeCountingStore) Load(ctx context.Context) (models.TokenSet, error) {
	if s.loadErr != nil {
		return models.TokenSet{}, s.loadErr
	}
	return s.Store.Load(ctx)
}

func (s *writeCountingStore) Save(ctx context.Context, t models.TokenSet) error {
	s.saves++
	return s.Store.Save(ctx, t)
}

func (s *writeCountingStore) Clear(ctx context.Context) error {
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	return s.Store.Clear(ctx)
}

var errBoom = errors.New("boom")
