package kitabu

import (
	"context"
	"fmt"
	"net/http"
)

// ClassesClient is the specialized client for managing Classes and their
// Streams.
type ClassesClient interface {
	List(ctx context.Context, token string) ([]Class, error)
	Create(ctx context.Context, token string, name string) (Class, error)
	ListStreams(
		ctx context.Context,
		token string,
		classID string,
	) ([]Stream, error)
	CreateStream(ctx context.Context, token string, stream Stream) (Stream, error)
	UpdateStream(
		ctx context.Context,
		token string,
		id string,
		name string,
	) (Stream, error)
	DeleteStream(ctx context.Context, token string, id string) error
}

type classesClient struct {
	*BaseClient
}

// NewClassesClient returns a specialized client for managing Classes and
// Streams.
func NewClassesClient(apiAddress string, allowInsecure bool) ClassesClient {
	return &classesClient{
		BaseClient: &BaseClient{
			APIAddress: apiAddress,
			HTTPClient: defaultHTTPClient(allowInsecure),
		},
	}
}

func (c *classesClient) List(
	ctx context.Context,
	token string,
) ([]Class, error) {
	classes := []Class{}
	return classes, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "classes",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &classes,
		},
	)
}

func (c *classesClient) Create(
	ctx context.Context,
	token string,
	name string,
) (Class, error) {
	created := Class{}
	return created, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "classes",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			ReqBodyObj:  Class{Name: name},
			SuccessCode: http.StatusOK,
			RespObj:     &created,
		},
	)
}

func (c *classesClient) ListStreams(
	ctx context.Context,
	token string,
	classID string,
) ([]Stream, error) {
	queryParams := map[string]string{}
	if classID != "" {
		queryParams["class_id"] = classID
	}
	streams := []Stream{}
	return streams, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "streams",
			QueryParams: queryParams,
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &streams,
		},
	)
}

func (c *classesClient) CreateStream(
	ctx context.Context,
	token string,
	stream Stream,
) (Stream, error) {
	created := Stream{}
	return created, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "streams",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			ReqBodyObj:  stream,
			SuccessCode: http.StatusOK,
			RespObj:     &created,
		},
	)
}

func (c *classesClient) UpdateStream(
	ctx context.Context,
	token string,
	id string,
	name string,
) (Stream, error) {
	updated := Stream{}
	return updated, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method: http.MethodPatch,
			Path:   fmt.Sprintf("streams/%s", id),
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			ReqBodyObj: struct {
				Name string `json:"name"`
			}{Name: name},
			SuccessCode: http.StatusOK,
			RespObj:     &updated,
		},
	)
}

func (c *classesClient) DeleteStream(
	ctx context.Context,
	token string,
	id string,
) error {
	return c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("streams/%s", id),
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
		},
	)
}
