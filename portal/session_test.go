package portal

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kitabu/kitabu"
	"github.com/stretchr/testify/require"
)

type memoryTokenStore struct {
	token string
}

func (m *memoryTokenStore) Get() (string, error) {
	return m.token, nil
}

func (m *memoryTokenStore) Set(token string) error {
	m.token = token
	return nil
}

func (m *memoryTokenStore) Delete() error {
	m.token = ""
	return nil
}

type memoryMessageStore struct {
	message string
}

func (m *memoryMessageStore) Set(message string) error {
	m.message = message
	return nil
}

func (m *memoryMessageStore) Consume() (string, error) {
	message := m.message
	m.message = ""
	return message, nil
}

type recordingNavigator struct {
	targets []string
}

func (r *recordingNavigator) Navigate(target string) {
	r.targets = append(r.targets, target)
}

func newTestSession(
	apiAddress string,
	token string,
) (*Session, *memoryTokenStore, *memoryMessageStore, *recordingNavigator) {
	tokens := &memoryTokenStore{token: token}
	messages := &memoryMessageStore{}
	navigator := &recordingNavigator{}
	session := NewSession(
		NewClient(apiAddress, true),
		tokens,
		messages,
		navigator,
	)
	return session, tokens, messages, navigator
}

// Stored token "abc", backend answers the dashboard with a 401: the token
// must be removed, the one-shot expiry message stored, and the navigation
// target must become /login.
func TestSessionExpiryOn401(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					"/api/student/portal/dashboard",
					r.URL.Path,
				)
				require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusUnauthorized)
			},
		),
	)
	defer server.Close()
	session, tokens, messages, navigator := newTestSession(server.URL, "abc")

	_, err := session.Dashboard(context.Background())

	require.Error(t, err)
	require.True(t, kitabu.IsSessionExpired(err))
	require.Empty(t, tokens.token)
	require.Equal(
		t,
		"Your session has expired. Please log in again.",
		messages.message,
	)
	require.Equal(t, []string{LoginPath}, navigator.targets)
	require.False(t, session.LoggedIn())
}

// With no stored credential, no network call may be made; the same expiry
// procedure triggers.
func TestSessionNoCredentialMakesNoNetworkCall(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("no request should have been made")
			},
		),
	)
	defer server.Close()
	session, _, messages, navigator := newTestSession(server.URL, "")

	_, err := session.Ledger(context.Background())

	require.Error(t, err)
	require.True(t, kitabu.IsNoCredential(err))
	require.Equal(t, "Session expired. Please log in again.", messages.message)
	require.Equal(t, []string{LoginPath}, navigator.targets)
}

func TestConsumeLoginMessageIsReadOnce(t *testing.T) {
	session, _, messages, _ := newTestSession("localhost:8080", "")
	require.NoError(t, messages.Set("Your session has expired. Please log in again."))

	require.Equal(
		t,
		"Your session has expired. Please log in again.",
		session.ConsumeLoginMessage(),
	)
	require.Empty(t, session.ConsumeLoginMessage())
}

// A failed login surfaces the server's message and stores no token.
func TestSessionLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/student/auth/login", r.URL.Path)
				require.NoError(t, r.ParseForm())
				require.Equal(t, "ADM001", r.PostFormValue("username"))
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintln(w, `{"detail": "Invalid credentials"}`)
			},
		),
	)
	defer server.Close()
	session, tokens, _, navigator := newTestSession(server.URL, "")

	err := session.Login(context.Background(), "ADM001", "wrong")

	require.Error(t, err)
	require.Equal(t, "Invalid credentials", err.Error())
	require.Empty(t, tokens.token)
	// A failed login is rendered inline; it never redirects
	require.Empty(t, navigator.targets)
}

func TestSessionLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintln(w, `{"access_token": "fresh"}`)
			},
		),
	)
	defer server.Close()
	session, tokens, _, _ := newTestSession(server.URL, "stale")

	require.NoError(
		t,
		session.Login(context.Background(), "ADM001", "opensesame"),
	)
	require.Equal(t, "fresh", tokens.token)
	require.True(t, session.LoggedIn())

	require.NoError(t, session.Logout())
	require.False(t, session.LoggedIn())
}

func TestSessionActivateOnboardingStoresToken(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/api/student/auth/onboard/verify":
					require.Equal(
						t,
						"ADM001",
						r.URL.Query().Get("admission_number"),
					)
					fmt.Fprintln(w, `{"full_name": "Akinyi Otieno"}`)
				case "/api/student/auth/onboard/activate":
					require.Equal(
						t,
						"opensesame",
						r.URL.Query().Get("new_password"),
					)
					fmt.Fprintln(w, `{"access_token": "first"}`)
				}
			},
		),
	)
	defer server.Close()
	session, tokens, _, _ := newTestSession(server.URL, "")

	identity, err :=
		session.VerifyOnboarding(context.Background(), "ADM001")
	require.NoError(t, err)
	require.Equal(t, "Akinyi Otieno", identity.FullName)

	require.NoError(
		t,
		session.ActivateOnboarding(context.Background(), "ADM001", "opensesame"),
	)
	require.Equal(t, "first", tokens.token)
}

// A non-auth failure is returned for inline rendering: no redirect, token
// intact.
func TestSessionOtherErrorsDoNotRedirect(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprintln(w, `{"detail": "boom"}`)
			},
		),
	)
	defer server.Close()
	session, tokens, messages, navigator := newTestSession(server.URL, "abc")

	_, err := session.Results(context.Background())

	require.Error(t, err)
	require.False(t, kitabu.IsSessionExpired(err))
	require.Equal(t, "abc", tokens.token)
	require.Empty(t, messages.message)
	require.Empty(t, navigator.targets)
}
