package kitabu

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// BooksClient is the specialized client for managing library Books.
type BooksClient interface {
	List(
		ctx context.Context,
		token string,
		skip int,
		limit int,
		search string,
	) (BookList, error)
	Create(ctx context.Context, token string, book Book) (Book, error)
	Update(
		ctx context.Context,
		token string,
		id string,
		update BookUpdate,
	) (Book, error)
	Delete(ctx context.Context, token string, id string) error
}

// defaultListLimit is the page size used whenever a caller doesn't specify
// one.
const defaultListLimit = 100

type booksClient struct {
	*BaseClient
}

// NewBooksClient returns a specialized client for managing library Books.
func NewBooksClient(apiAddress string, allowInsecure bool) BooksClient {
	return &booksClient{
		BaseClient: &BaseClient{
			APIAddress: apiAddress,
			HTTPClient: defaultHTTPClient(allowInsecure),
		},
	}
}

func (b *booksClient) List(
	ctx context.Context,
	token string,
	skip int,
	limit int,
	search string,
) (BookList, error) {
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
	bookList := BookList{}
	return bookList, b.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "books",
			QueryParams: queryParams,
			AuthHeaders: b.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &bookList,
		},
	)
}

func (b *booksClient) Create(
	ctx context.Context,
	token string,
	book Book,
) (Book, error) {
	created := Book{}
	return created, b.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "books",
			AuthHeaders: b.BearerTokenAuthHeaders(token),
			ReqBodyObj:  book,
			SuccessCode: http.StatusOK,
			RespObj:     &created,
		},
	)
}

func (b *booksClient) Update(
	ctx context.Context,
	token string,
	id string,
	update BookUpdate,
) (Book, error) {
	updated := Book{}
	return updated, b.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPatch,
			Path:        fmt.Sprintf("books/%s", id),
			AuthHeaders: b.BearerTokenAuthHeaders(token),
			ReqBodyObj:  update,
			SuccessCode: http.StatusOK,
			RespObj:     &updated,
		},
	)
}

func (b *booksClient) Delete(
	ctx context.Context,
	token string,
	id string,
) error {
	return b.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("books/%s", id),
			AuthHeaders: b.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
		},
	)
}
