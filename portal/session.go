package portal

import (
	"context"
	"log"

	"github.com/kitabu/kitabu"
	"github.com/pkg/errors"
)

// LoginPath is the navigation target reported to the Navigator when a
// session ends.
const LoginPath = "/login"

const (
	noCredentialMessage   = "Session expired. Please log in again."
	sessionExpiredMessage = "Your session has expired. Please log in again."
)

// TokenStore persists the student bearer token. Its presence is the sole
// signal of "logged in"; the token is never refreshed in place, only replaced
// or deleted.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// MessageStore holds the one-shot login message. Consume has read-once
// semantics: a second call in the same session returns nothing.
type MessageStore interface {
	Set(message string) error
	Consume() (string, error)
}

// Navigator is told where the application should go next. The session manager
// decides WHEN a navigation is due (on expiry); the shell implementing this
// interface decides HOW to get there.
type Navigator interface {
	Navigate(target string)
}

// Session is the student portal session: an explicitly constructed object
// owning the stored credential, the one-shot login message, and the uniform
// session-expiry reaction. Every data call goes through it. The underlying
// Client stays free of these side effects.
type Session struct {
	client    Client
	tokens    TokenStore
	messages  MessageStore
	navigator Navigator
}

// NewSession returns a Session over the given client and stores. navigator
// may be nil when no shell is interested in navigation (tests, scripts).
func NewSession(
	client Client,
	tokens TokenStore,
	messages MessageStore,
	navigator Navigator,
) *Session {
	return &Session{
		client:    client,
		tokens:    tokens,
		messages:  messages,
		navigator: navigator,
	}
}

// LoggedIn reports whether a credential is present. Token presence is the
// only client-side signal; validity is determined solely by server response
// codes.
func (s *Session) LoggedIn() bool {
	token, err := s.tokens.Get()
	return err == nil && token != ""
}

// Login exchanges credentials for a token and stores it, replacing any
// previous one.
func (s *Session) Login(
	ctx context.Context,
	admissionNumber string,
	password string,
) error {
	token, err := s.client.Login(ctx, admissionNumber, password)
	if err != nil {
		return err
	}
	return errors.Wrap(s.tokens.Set(token), "error storing token")
}

// VerifyOnboarding confirms who an admission number belongs to. No credential
// is involved.
func (s *Session) VerifyOnboarding(
	ctx context.Context,
	admissionNumber string,
) (OnboardingIdentity, error) {
	return s.client.VerifyOnboarding(ctx, admissionNumber)
}

// ActivateOnboarding sets the student's first password and stores the
// resulting token.
func (s *Session) ActivateOnboarding(
	ctx context.Context,
	admissionNumber string,
	newPassword string,
) error {
	token, err := s.client.ActivateOnboarding(ctx, admissionNumber, newPassword)
	if err != nil {
		return err
	}
	return errors.Wrap(s.tokens.Set(token), "error storing token")
}

// Logout deletes the stored credential.
func (s *Session) Logout() error {
	return s.tokens.Delete()
}

// ConsumeLoginMessage returns any pending one-shot message and clears it.
func (s *Session) ConsumeLoginMessage() string {
	message, err := s.messages.Consume()
	if err != nil {
		log.Printf("error reading login message: %s", err)
		return ""
	}
	return message
}

func (s *Session) Me(ctx context.Context) (Profile, error) {
	token, err := s.token()
	if err != nil {
		return Profile{}, err
	}
	profile, err := s.client.Me(ctx, token)
	return profile, s.checked(err)
}

func (s *Session) Dashboard(ctx context.Context) (Dashboard, error) {
	token, err := s.token()
	if err != nil {
		return Dashboard{}, err
	}
	dashboard, err := s.client.Dashboard(ctx, token)
	return dashboard, s.checked(err)
}

func (s *Session) Ledger(ctx context.Context) (Ledger, error) {
	token, err := s.token()
	if err != nil {
		return Ledger{}, err
	}
	ledger, err := s.client.Ledger(ctx, token)
	return ledger, s.checked(err)
}

func (s *Session) Results(ctx context.Context) ([]ExamResult, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	results, err := s.client.Results(ctx, token)
	return results, s.checked(err)
}

func (s *Session) Subjects(ctx context.Context) ([]Subject, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	subjects, err := s.client.Subjects(ctx, token)
	return subjects, s.checked(err)
}

func (s *Session) Subject(
	ctx context.Context,
	id string,
) (SubjectDetail, error) {
	token, err := s.token()
	if err != nil {
		return SubjectDetail{}, err
	}
	detail, err := s.client.Subject(ctx, token, id)
	return detail, s.checked(err)
}

// token returns the stored credential. When none is present, the expiry
// procedure runs WITHOUT any network call and *kitabu.ErrNoCredential is
// returned so in-flight callers abort.
func (s *Session) token() (string, error) {
	token, err := s.tokens.Get()
	if err != nil {
		return "", errors.Wrap(err, "error reading stored token")
	}
	if token == "" {
		s.expire(noCredentialMessage)
		return "", &kitabu.ErrNoCredential{}
	}
	return token, nil
}

// checked runs the expiry procedure when the API reported 401, then hands the
// error back unchanged so the caller does not render with stale data. Any
// other error passes through untouched for inline rendering.
func (s *Session) checked(err error) error {
	if kitabu.IsSessionExpired(err) {
		s.expire(sessionExpiredMessage)
	}
	return err
}

func (s *Session) expire(message string) {
	if err := s.tokens.Delete(); err != nil {
		log.Printf("error deleting stored token: %s", err)
	}
	if err := s.messages.Set(message); err != nil {
		log.Printf("error storing login message: %s", err)
	}
	if s.navigator != nil {
		s.navigator.Navigate(LoginPath)
	}
}
