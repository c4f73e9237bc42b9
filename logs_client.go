package kitabu

import (
	"context"
	"net/http"
)

// LogsClient is the specialized client for system audit logs.
type LogsClient interface {
	List(
		ctx context.Context,
		token string,
		filter string,
		search string,
	) (LogPage, error)
}

type logsClient struct {
	*BaseClient
}

// NewLogsClient returns a specialized client for system audit logs.
func NewLogsClient(apiAddress string, allowInsecure bool) LogsClient {
	return &logsClient{
		BaseClient: &BaseClient{
			APIAddress: apiAddress,
			HTTPClient: defaultHTTPClient(allowInsecure),
		},
	}
}

func (l *logsClient) List(
	ctx context.Context,
	token string,
	filter string,
	search string,
) (LogPage, error) {
	queryParams := map[string]string{}
	if filter != "" {
		queryParams["filter"] = filter
	}
	if search != "" {
		queryParams["search"] = search
	}
	page := LogPage{}
	return page, l.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "logs",
			QueryParams: queryParams,
			AuthHeaders: l.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &page,
		},
	)
}
