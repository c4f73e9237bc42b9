package kitabu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUsersClient(t *testing.T) {
	client := NewUsersClient(testAPIAddress, testClientAllowInsecure)
	require.IsType(t, &usersClient{}, client)
	requireBaseClient(t, client.(*usersClient).BaseClient)
}

func TestUsersClientCurrent(t *testing.T) {
	testUser := User{
		ID:       "u1",
		Email:    "librarian@example.sc.ke",
		FullName: "Naliaka W.",
		Role:     RoleLibrarian,
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/auth/me", r.URL.Path)
				require.Equal(
					t,
					fmt.Sprintf("Bearer %s", testAPIToken),
					r.Header.Get("Authorization"),
				)
				bodyBytes, err := json.Marshal(testUser)
				require.NoError(t, err)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testClientAllowInsecure)
	user, err := client.Current(context.Background(), testAPIToken)
	require.NoError(t, err)
	require.Equal(t, testUser, user)
}

func TestUsersClientCurrentNotProvisioned(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprintln(w, `{"detail": "Registration disabled"}`)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testClientAllowInsecure)
	_, err := client.Current(context.Background(), testAPIToken)
	require.Error(t, err)
	require.True(t, IsForbidden(err))
}

func TestUsersClientUpdateRole(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPatch, r.Method)
				require.Equal(t, "/users/u2/role", r.URL.Path)
				body := struct {
					Role Role `json:"role"`
				}{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Equal(t, RoleAdmin, body.Role)
				fmt.Fprintln(
					w,
					`{"id": "u2", "email": "x@example.sc.ke", "role": "admin"}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testClientAllowInsecure)
	user, err :=
		client.UpdateRole(context.Background(), testAPIToken, "u2", RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, user.Role)
}

func TestUsersClientCheckPolicyNeedsNoCredential(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/auth/check-policy", r.URL.Path)
				require.Empty(t, r.Header.Get("Authorization"))
				require.Equal(
					t,
					"naliaka@example.sc.ke",
					r.URL.Query().Get("email"),
				)
				fmt.Fprintln(
					w,
					`{"allow_public_signup": true, "require_whitelist": false}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testClientAllowInsecure)
	policy, err :=
		client.CheckPolicy(context.Background(), "naliaka@example.sc.ke")
	require.NoError(t, err)
	require.True(t, policy.AllowPublicSignup)
}
