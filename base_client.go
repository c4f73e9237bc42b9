package kitabu

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// BaseClient carries the machinery shared by all specialized Kitabu API
// clients. It assembles requests, maps non-2xx responses to the error
// taxonomy, and nothing more: it never caches, retries, or navigates.
type BaseClient struct {
	APIAddress string
	HTTPClient *http.Client
}

// NewBaseClient returns a BaseClient for the API at the given address.
func NewBaseClient(apiAddress string, allowInsecure bool) *BaseClient {
	return &BaseClient{
		APIAddress: apiAddress,
		HTTPClient: defaultHTTPClient(allowInsecure),
	}
}

// BasicAuthHeaders returns a map containing an Authorization header suitable
// for use in basic auth.
func (b *BaseClient) BasicAuthHeaders(
	username string,
	password string,
) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf(
			"Basic %s",
			base64.StdEncoding.EncodeToString(
				[]byte(fmt.Sprintf("%s:%s", username, password)),
			),
		),
	}
}

// BearerTokenAuthHeaders returns a map containing an Authorization header
// that bears the given token.
func (b *BaseClient) BearerTokenAuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}

// ExecuteRequest issues the given request and, if a RespObj was provided,
// unmarshals the response body into it.
func (b *BaseClient) ExecuteRequest(
	ctx context.Context,
	apiReq OutboundRequest,
) error {
	resp, err := b.SubmitRequest(ctx, apiReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if apiReq.RespObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, apiReq.RespObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

// SubmitRequest issues the given request and returns the raw response,
// provided its status matched the expected success code. Any other status is
// mapped to the error taxonomy: 401 to *ErrSessionExpired, 403 to
// *ErrForbidden, and everything else to *ErrRequestFailed carrying the
// server-provided detail message when one is present.
func (b *BaseClient) SubmitRequest(
	ctx context.Context,
	apiReq OutboundRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	var contentType string
	if apiReq.ReqBodyObj != nil {
		switch rb := apiReq.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		case url.Values:
			reqBodyReader = strings.NewReader(rb.Encode())
			contentType = "application/x-www-form-urlencoded"
		default:
			reqBodyBytes, err := json.Marshal(apiReq.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequest(
		apiReq.Method,
		fmt.Sprintf("%s/%s", b.APIAddress, apiReq.Path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			apiReq.Method,
			apiReq.Path,
		)
	}
	req = req.WithContext(ctx)
	if len(apiReq.QueryParams) > 0 {
		q := req.URL.Query()
		for k, v := range apiReq.QueryParams {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Caller-supplied headers are applied before auth headers so that the
	// Authorization header is always present, never dropped.
	for k, v := range apiReq.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range apiReq.AuthHeaders {
		req.Header.Set(k, v)
	}

	resp, err := b.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}

	if (apiReq.SuccessCode == 0 && resp.StatusCode != http.StatusOK) ||
		(apiReq.SuccessCode != 0 && resp.StatusCode != apiReq.SuccessCode) {
		defer resp.Body.Close()
		// The response body, when it is JSON, carries a detail message worth
		// surfacing. A body in any other shape is tolerated and ignored.
		var apiErr error
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			apiErr = &ErrSessionExpired{}
		case http.StatusForbidden:
			apiErr = &ErrForbidden{}
		default:
			apiErr = &ErrRequestFailed{StatusCode: resp.StatusCode}
		}
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "error reading error response body")
		}
		_ = json.Unmarshal(bodyBytes, apiErr)
		return nil, apiErr
	}
	return resp, nil
}

func defaultHTTPClient(allowInsecure bool) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: allowInsecure,
			},
		},
	}
}
