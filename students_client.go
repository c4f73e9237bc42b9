package kitabu

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// StudentsClient is the specialized client for managing Students.
type StudentsClient interface {
	List(
		ctx context.Context,
		token string,
		opts StudentListOptions,
	) (StudentList, error)
	Create(ctx context.Context, token string, student Student) (Student, error)
	Update(
		ctx context.Context,
		token string,
		id string,
		update StudentUpdate,
	) (Student, error)
	Delete(ctx context.Context, token string, id string) error
}

type studentsClient struct {
	*BaseClient
}

// NewStudentsClient returns a specialized client for managing Students.
func NewStudentsClient(apiAddress string, allowInsecure bool) StudentsClient {
	return &studentsClient{
		BaseClient: &BaseClient{
			APIAddress: apiAddress,
			HTTPClient: defaultHTTPClient(allowInsecure),
		},
	}
}

func (s *studentsClient) List(
	ctx context.Context,
	token string,
	opts StudentListOptions,
) (StudentList, error) {
	if opts.Limit == 0 {
		opts.Limit = defaultListLimit
	}
	queryParams := map[string]string{
		"skip":  strconv.Itoa(opts.Skip),
		"limit": strconv.Itoa(opts.Limit),
	}
	if opts.Search != "" {
		queryParams["search"] = opts.Search
	}
	if opts.ClassID != "" {
		queryParams["class_id"] = opts.ClassID
	}
	if opts.StreamID != "" {
		queryParams["stream_id"] = opts.StreamID
	}
	studentList := StudentList{}
	return studentList, s.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "students",
			QueryParams: queryParams,
			AuthHeaders: s.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &studentList,
		},
	)
}

func (s *studentsClient) Create(
	ctx context.Context,
	token string,
	student Student,
) (Student, error) {
	created := Student{}
	return created, s.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "students",
			AuthHeaders: s.BearerTokenAuthHeaders(token),
			ReqBodyObj:  student,
			SuccessCode: http.StatusOK,
			RespObj:     &created,
		},
	)
}

func (s *studentsClient) Update(
	ctx context.Context,
	token string,
	id string,
	update StudentUpdate,
) (Student, error) {
	updated := Student{}
	return updated, s.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPatch,
			Path:        fmt.Sprintf("students/%s", id),
			AuthHeaders: s.BearerTokenAuthHeaders(token),
			ReqBodyObj:  update,
			SuccessCode: http.StatusOK,
			RespObj:     &updated,
		},
	)
}

func (s *studentsClient) Delete(
	ctx context.Context,
	token string,
	id string,
) error {
	return s.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("students/%s", id),
			AuthHeaders: s.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
		},
	)
}
