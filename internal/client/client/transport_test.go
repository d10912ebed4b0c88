package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

func TestBearerFor(t *testing.T) {
	both := models.TokenSet{AccessToken: "acc", IDToken: "id"}
	idOnly := models.TokenSet{IDToken: "id"}

	tests := []struct {
		path string
		ts   models.TokenSet
		want string
	}{
		{"/api/images/alice", both, "id"},
		{"/api/upload", models.TokenSet{AccessToken: "acc"}, ""},
		{"/auth/me", both, "acc"},
		{"/auth/me", idOnly, ""},
		{"/health", both, "acc"},
		{"/health", idOnly, "id"},
		{"/health", models.TokenSet{}, ""},
		{"/apix", both, "acc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bearerFor(tt.path, tt.ts), "path %s", tt.path)
	}
}

func TestAuthTransport_KeepsCallerHeaders(t *testing.T) {
	var got http.Header
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header
		return httptest.NewRecorder().Result(), nil
	})
	tr := newAuthTransport(rt, session)
	tr.newID = func() string { return "fixed-id" }

	req := httptest.NewRequest(http.MethodGet, "http://x/api/images/u", nil)
	req.Header.Set(common.AuthorizationHeader, "Bearer explicit")
	_, err := tr.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer explicit", got.Get(common.AuthorizationHeader))
	assert.Equal(t, "fixed-id", got.Get(common.RequestIDHeader))
	assert.Empty(t, req.Header.Get(common.RequestIDHeader), "original request is not mutated")
}

func TestAuthTransport_NoSession(t *testing.T) {
	var got http.Header
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header
		return httptest.NewRecorder().Result(), nil
	})

	_, err := newAuthTransport(rt, staticTokens{err: common.ErrNoSession}).
		RoundTrip(httptest.NewRequest(http.MethodGet, "http://x/api/images/u", nil))
	require.NoError(t, err)

	assert.Empty(t, got.Get(common.AuthorizationHeader))
}
