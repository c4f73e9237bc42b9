package kitabu

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// BorrowsClient is the specialized client for borrow/return actions and
// borrow history.
type BorrowsClient interface {
	Borrow(
		ctx context.Context,
		token string,
		bookID string,
		studentID string,
	) (BorrowRecord, error)
	Return(ctx context.Context, token string, id string) (BorrowRecord, error)
	History(
		ctx context.Context,
		token string,
		skip int,
		limit int,
		search string,
	) (BorrowRecordList, error)
}

type borrowsClient struct {
	*BaseClient
}

// NewBorrowsClient returns a specialized client for borrow/return actions and
// borrow history.
func NewBorrowsClient(apiAddress string, allowInsecure bool) BorrowsClient {
	return &borrowsClient{
		BaseClient: &BaseClient{
			APIAddress: apiAddress,
			HTTPClient: defaultHTTPClient(allowInsecure),
		},
	}
}

func (b *borrowsClient) Borrow(
	ctx context.Context,
	token string,
	bookID string,
	studentID string,
) (BorrowRecord, error) {
	record := BorrowRecord{}
	return record, b.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method: http.MethodPost,
			Path:   "borrow",
			QueryParams: map[string]string{
				"book_id":    bookID,
				"student_id": studentID,
			},
			AuthHeaders: b.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &record,
		},
	)
}

func (b *borrowsClient) Return(
	ctx context.Context,
	token string,
	id string,
) (BorrowRecord, error) {
	record := BorrowRecord{}
	return record, b.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        fmt.Sprintf("return/%s", id),
			AuthHeaders: b.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &record,
		},
	)
}

func (b *borrowsClient) History(
	ctx context.Context,
	token string,
	skip int,
	limit int,
	search string,
) (BorrowRecordList, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	queryParams := map[string]string{
		"skip":  strconv.Itoa(skip),
		"limit": strconv.Itoa(limit),
	}
	if search != "" {
		queryParams["search"] = search
	}
	recordList := BorrowRecordList{}
	return recordList, b.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "history",
			QueryParams: queryParams,
			AuthHeaders: b.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &recordList,
		},
	)
}
