package session

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// ParseIDToken decodes the display claims of an identity token without
// checking its signature. Malformed input yields zero claims.
func ParseIDToken(idToken string) models.IDClaims {
	claims, err := decode(idToken)
	if err != nil {
		return models.IDClaims{}
	}

	out := models.IDClaims{
		Username: stringClaim(claims, "cognito:username"),
		Email:    stringClaim(claims, "email"),
		Subject:  stringClaim(claims, "sub"),
	}
	if out.Username == "" {
		out.Username = stringClaim(claims, "username")
	}
	return out
}

// IsExpired reports whether idToken can no longer authorize requests at
// now. Empty or undecodable tokens and tokens without exp count as expired.
func IsExpired(idToken string, now time.Time) bool {
	return checkIDToken(idToken, now) != nil
}

// checkIDToken returns common.ErrInvalidToken when the payload cannot be
// read or carries no usable exp, and common.ErrTokenExpired once exp is
// reached.
func checkIDToken(idToken string, now time.Time) error {
	claims, err := decode(idToken)
	if err != nil {
		return err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return common.ErrInvalidToken
	}
	if !now.Before(exp.Time) {
		return common.ErrTokenExpired
	}
	return nil
}

// decode reads only the payload segment. The header is never looked at,
// so tokens with an empty or unknown alg still yield their claims.
func decode(token string) (jwt.MapClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, common.ErrInvalidToken
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

func stringClaim(c jwt.MapClaims, name string) string {
	s, _ := c[name].(string)
	return s
}
