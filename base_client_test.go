package kitabu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBaseClient(apiAddress string) *BaseClient {
	return &BaseClient{
		APIAddress: apiAddress,
		HTTPClient: &http.Client{},
	}
}

func TestSubmitRequest401MapsToSessionExpired(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail": "Could not validate credentials"}`)) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := newTestBaseClient(server.URL)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodGet,
			Path:   "books",
		},
	)
	require.Error(t, err)
	require.True(t, IsSessionExpired(err))
	require.Equal(t, "Could not validate credentials", err.Error())
}

func TestSubmitRequest403MapsToForbidden(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		),
	)
	defer server.Close()
	client := newTestBaseClient(server.URL)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodGet,
			Path:   "auth/me",
		},
	)
	require.Error(t, err)
	require.True(t, IsForbidden(err))
	require.False(t, IsSessionExpired(err))
}

func TestSubmitRequestOtherErrorPrefersDetail(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"detail": "Invalid credentials"}`)) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := newTestBaseClient(server.URL)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodPost,
			Path:   "api/student/auth/login",
		},
	)
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", err.Error())
	failedErr, ok := err.(*ErrRequestFailed)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, failedErr.StatusCode)
}

func TestSubmitRequestGenericMessageForNonJSONBody(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("upstream unavailable")) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := newTestBaseClient(server.URL)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodGet,
			Path:   "analytics",
		},
	)
	require.Error(t, err)
	require.Equal(t, "request failed with status 502", err.Error())
}

func TestSubmitRequestBearerHeaderWinsOverCallerHeader(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
				require.Equal(t, "kitabu-test", r.Header.Get("X-Client"))
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("{}")) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := newTestBaseClient(server.URL)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodGet,
			Path:   "books",
			Headers: map[string]string{
				"Authorization": "Bearer stale",
				"X-Client":      "kitabu-test",
			},
			AuthHeaders: client.BearerTokenAuthHeaders("abc"),
		},
	)
	require.NoError(t, err)
}

func TestSubmitRequestFormEncodedBody(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					"application/x-www-form-urlencoded",
					r.Header.Get("Content-Type"),
				)
				require.NoError(t, r.ParseForm())
				require.Equal(t, "ADM001", r.PostFormValue("username"))
				require.Equal(t, "opensesame", r.PostFormValue("password"))
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"access_token": "abc"}`)) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := newTestBaseClient(server.URL)
	respObj := struct {
		AccessToken string `json:"access_token"`
	}{}
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodPost,
			Path:   "api/student/auth/login",
			ReqBodyObj: url.Values{
				"username": []string{"ADM001"},
				"password": []string{"opensesame"},
			},
			RespObj: &respObj,
		},
	)
	require.NoError(t, err)
	require.Equal(t, "abc", respObj.AccessToken)
}
