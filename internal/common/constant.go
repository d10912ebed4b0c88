// Package common contains constants and sentinel errors shared by the
// gallery client packages.
package common

// Keys of the persisted session state. They match the browser storage
// layout of the web client so both can share a backend session.
const (
	KeyAccessToken  = "token"
	KeyIDToken      = "idToken"
	KeyRefreshToken = "refreshToken"
	KeyUsername     = "username"
)

// SessionKeys lists every persisted session key.
var SessionKeys = []string{KeyAccessToken, KeyIDToken, KeyRefreshToken, KeyUsername}

const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
)

// LoginRoute is the internal route the shell shows when no session exists.
const LoginRoute = "/login"
