package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OpenIDConfig holds OpenID Connect configuration. Domain is the issuer host.
type OpenIDConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Validate reports the first missing setting
func (cfg OpenIDConfig) Validate() error {
	switch {
	case cfg.Domain == "":
		return errors.New("domain is required")
	case cfg.ClientID == "":
		return errors.New("client ID is required")
	case cfg.ClientSecret == "":
		return errors.New("client secret is required")
	case cfg.CallbackURL == "":
		return errors.New("callback URL is required")
	}
	return nil
}

func (cfg OpenIDConfig) issuer() string {
	return "https://" + cfg.Domain + "/"
}

// OpenIDProvider signs staff in through any OpenID Connect issuer
type OpenIDProvider struct {
	oauth    oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewOpenIDProvider discovers the issuer at cfg.Domain. The email scope is
// requested so callers can match the identity to a staff account.
func NewOpenIDProvider(ctx context.Context, cfg OpenIDConfig) (*OpenIDProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	issuer, err := oidc.NewProvider(ctx, cfg.issuer())
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC issuer %s: %w", cfg.Domain, err)
	}

	return &OpenIDProvider{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     issuer.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: issuer.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// GetAuthURL returns the issuer login URL carrying state
func (p *OpenIDProvider) GetAuthURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for tokens
func (p *OpenIDProvider) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawID, _ := tok.Extra("id_token").(string)
	return &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		IDToken:      rawID,
		Expiry:       tok.Expiry.Unix(),
	}, nil
}

// GetClaims verifies the id_token signature and audience and decodes its claims
func (p *OpenIDProvider) GetClaims(ctx context.Context, token *Token) (Claims, error) {
	if token == nil || token.IDToken == "" {
		return nil, errors.New("no id_token in token")
	}

	idToken, err := p.verifier.Verify(ctx, token.IDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id_token: %w", err)
	}

	claims := Claims{}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}
	return claims, nil
}
