package common

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNoSession    = errors.New("no active session")
)
