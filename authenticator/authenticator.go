package authenticator

import (
	"context"
	"errors"
	"strings"
)

// ErrNoEmail is returned when the identity token carries no usable email
var ErrNoEmail = errors.New("identity token has no verified email")

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Email returns the email claim. Tokens that mark the email unverified are refused.
func (c Claims) Email() (string, error) {
	email, _ := c["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrNoEmail
	}
	if verified, ok := c["email_verified"].(bool); ok && !verified {
		return "", ErrNoEmail
	}
	return email, nil
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
