package session

import "errors"

// ErrMissingCode is returned, wrapped in an ExchangeError, when the
// callback carried no authorization code.
var ErrMissingCode = errors.New("no authorization code received")

// ErrIncompleteTokens means the exchange succeeded but the response had no
// identity token.
var ErrIncompleteTokens = errors.New("token response has no id_token")

// ExchangeError reports a failed authorization-code exchange. The store is
// never written when it is returned.
type ExchangeError struct {
	Err error
}

func (e *ExchangeError) Error() string {
	return "code exchange failed: " + e.Err.Error()
}

func (e *ExchangeError) Unwrap() error { return e.Err }
