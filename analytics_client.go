package kitabu

import (
	"context"
	"net/http"
)

// AnalyticsClient is the specialized client for the reports page's analytics
// rollup.
type AnalyticsClient interface {
	Get(ctx context.Context, token string) (Analytics, error)
}

type analyticsClient struct {
	*BaseClient
}

// NewAnalyticsClient returns a specialized client for analytics.
func NewAnalyticsClient(apiAddress string, allowInsecure bool) AnalyticsClient {
	return &analyticsClient{
		BaseClient: &BaseClient{
			APIAddress: apiAddress,
			HTTPClient: defaultHTTPClient(allowInsecure),
		},
	}
}

func (a *analyticsClient) Get(
	ctx context.Context,
	token string,
) (Analytics, error) {
	analytics := Analytics{}
	return analytics, a.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "analytics",
			AuthHeaders: a.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &analytics,
		},
	)
}
