package main

import (
	"context"

	"github.com/kitabu/kitabu"
	"github.com/kitabu/kitabu/identity"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// storedTokenProvider adapts the persisted CLI configuration to the
// identity.Provider interface: the config's token plays the part of the
// identity provider's on-demand access token.
type storedTokenProvider struct {
	config *config
}

func (s *storedTokenProvider) CurrentIdentity(
	context.Context,
) (*identity.Identity, error) {
	if s.config.APIToken == "" {
		return nil, nil
	}
	return &identity.Identity{Email: s.config.Email}, nil
}

func (s *storedTokenProvider) AccessToken(
	context.Context,
) (string, error) {
	return s.config.APIToken, nil
}

// staffSession bundles everything a staff command needs: the aggregated API
// client, the per-invocation identity cache, and the token to present.
type staffSession struct {
	client kitabu.Client
	cache  *identity.UserCache
	config *config
}

func getSession(c *cli.Context) (*staffSession, error) {
	config, err := getConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "error retrieving configuration")
	}
	client := kitabu.NewClient(config.APIAddress, c.Bool(flagInsecure))
	return &staffSession{
		client: client,
		cache: identity.NewUserCache(
			&storedTokenProvider{config: config},
			client.Users(),
		),
		config: config,
	}, nil
}

func (s *staffSession) token() string {
	return s.config.APIToken
}

// requirePage resolves the caller's role and enforces the page's allowed-role
// set. Hidden sidebar links do not protect anything; every page re-checks.
func (s *staffSession) requirePage(
	ctx context.Context,
	page kitabu.Page,
) error {
	s.cache.Resolve(ctx)
	role := s.cache.Role()
	if !kitabu.Allows(role, page) {
		return errors.Errorf(
			"Access Denied: this section is not available to role %q",
			role,
		)
	}
	return nil
}
