package identity

import (
	"context"
	"sync"

	"github.com/coreos/go-oidc"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const envconfigPrefix = "OIDC"

type config struct {
	// ProviderURL examples:
	//   Google: https://accounts.google.com
	//   Azure Active Directory: https://login.microsoftonline.com/{tenant id}/v2.0
	ProviderURL  string `envconfig:"PROVIDER_URL" required:"true"`
	ClientID     string `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	RedirectURL  string `envconfig:"REDIRECT_URL" default:"http://localhost:8085/auth/callback"`
}

// OIDCProvider is a Provider backed by an OpenID Connect identity provider.
type OIDCProvider struct {
	oauth2Config *oauth2.Config
	verifier     *oidc.IDTokenVerifier

	mu          sync.Mutex
	tokenSource oauth2.TokenSource
	identity    *Identity
}

// GetProviderFromEnvironment returns an OIDCProvider configured from
// OIDC_-prefixed environment variables.
func GetProviderFromEnvironment(
	ctx context.Context,
) (*OIDCProvider, error) {
	c := config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return nil, errors.Wrap(err, "error reading OIDC configuration")
	}

	provider, err := oidc.NewProvider(ctx, c.ProviderURL)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error querying OIDC provider at %s",
			c.ProviderURL,
		)
	}

	return &OIDCProvider{
		oauth2Config: &oauth2.Config{
			Endpoint:     provider.Endpoint(),
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: c.ClientID}),
	}, nil
}

// AuthCodeURL returns the URL the user must visit to authenticate.
func (o *OIDCProvider) AuthCodeURL(state string) string {
	return o.oauth2Config.AuthCodeURL(state)
}

// Exchange redeems an authorization code, verifies the identity token it
// came with, and establishes the provider-side session.
func (o *OIDCProvider) Exchange(ctx context.Context, code string) error {
	oauth2Token, err := o.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return errors.Wrap(err, "error exchanging authorization code")
	}
	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return errors.New("token response included no id_token")
	}
	idToken, err := o.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return errors.Wrap(err, "error verifying identity token")
	}
	claims := struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}{}
	if err := idToken.Claims(&claims); err != nil {
		return errors.Wrap(err, "error reading identity token claims")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.tokenSource = o.oauth2Config.TokenSource(ctx, oauth2Token)
	o.identity = &Identity{
		Subject: idToken.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}
	return nil
}

func (o *OIDCProvider) CurrentIdentity(
	context.Context,
) (*Identity, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.identity, nil
}

// AccessToken returns a fresh access token for the backend, refreshing
// through the token source as needed.
func (o *OIDCProvider) AccessToken(context.Context) (string, error) {
	o.mu.Lock()
	tokenSource := o.tokenSource
	o.mu.Unlock()
	if tokenSource == nil {
		return "", errors.New("no identity provider session")
	}
	token, err := tokenSource.Token()
	if err != nil {
		return "", errors.Wrap(err, "error retrieving access token")
	}
	return token.AccessToken, nil
}

// SignOut drops the provider-side session.
func (o *OIDCProvider) SignOut() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tokenSource = nil
	o.identity = nil
}
