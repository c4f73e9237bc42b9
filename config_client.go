package kitabu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ConfigClient is the specialized client for the registration policy flags
// and the signup whitelist.
type ConfigClient interface {
	Get(ctx context.Context, token string) (SystemConfig, error)
	Update(
		ctx context.Context,
		token string,
		update SystemConfigUpdate,
	) (SystemConfig, error)
	Whitelist(ctx context.Context, token string) ([]WhitelistEntry, error)
	AddToWhitelist(
		ctx context.Context,
		token string,
		email string,
	) (WhitelistEntry, error)
	RemoveFromWhitelist(ctx context.Context, token string, email string) error
}

type configClient struct {
	*BaseClient
}

// NewConfigClient returns a specialized client for system configuration and
// the signup whitelist.
func NewConfigClient(apiAddress string, allowInsecure bool) ConfigClient {
	return &configClient{
		BaseClient: &BaseClient{
			APIAddress: apiAddress,
			HTTPClient: defaultHTTPClient(allowInsecure),
		},
	}
}

func (c *configClient) Get(
	ctx context.Context,
	token string,
) (SystemConfig, error) {
	config := SystemConfig{}
	return config, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "config",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &config,
		},
	)
}

// Update sends the changed flags as query params, matching the backend's
// PATCH /config contract.
func (c *configClient) Update(
	ctx context.Context,
	token string,
	update SystemConfigUpdate,
) (SystemConfig, error) {
	queryParams := map[string]string{}
	if update.AllowPublicSignup != nil {
		queryParams["allow_public_signup"] =
			strconv.FormatBool(*update.AllowPublicSignup)
	}
	if update.RequireWhitelist != nil {
		queryParams["require_whitelist"] =
			strconv.FormatBool(*update.RequireWhitelist)
	}
	config := SystemConfig{}
	return config, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPatch,
			Path:        "config",
			QueryParams: queryParams,
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &config,
		},
	)
}

func (c *configClient) Whitelist(
	ctx context.Context,
	token string,
) ([]WhitelistEntry, error) {
	entries := []WhitelistEntry{}
	return entries, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "whitelist",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &entries,
		},
	)
}

func (c *configClient) AddToWhitelist(
	ctx context.Context,
	token string,
	email string,
) (WhitelistEntry, error) {
	entry := WhitelistEntry{}
	return entry, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method: http.MethodPost,
			Path:   "whitelist",
			QueryParams: map[string]string{
				"email": email,
			},
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &entry,
		},
	)
}

func (c *configClient) RemoveFromWhitelist(
	ctx context.Context,
	token string,
	email string,
) error {
	return c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("whitelist/%s", url.PathEscape(email)),
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
		},
	)
}
