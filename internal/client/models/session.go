package models

// TokenSet is the authenticated identity persisted between runs.
type TokenSet struct {
	AccessToken  string
	IDToken      string
	RefreshToken string
	Username     string
}

// Empty reports whether no identity token is present.
func (t TokenSet) Empty() bool {
	return t.IDToken == ""
}

// IDClaims are the display claims carried by an identity token.
type IDClaims struct {
	Username string
	Email    string
	Subject  string
}

// DisplayName prefers the e-mail address, as the web client does.
func (c IDClaims) DisplayName() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Username
}
