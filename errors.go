package kitabu

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoCredential indicates that an operation requiring a stored credential
// was attempted while no credential was present. No network call is made when
// this error is returned.
type ErrNoCredential struct{}

func (e *ErrNoCredential) Error() string {
	return "no credential found; please log in to continue"
}

// ErrSessionExpired indicates the API rejected the request with a 401. The
// credential that was presented (if any) is no longer valid.
type ErrSessionExpired struct {
	Detail string `json:"detail"`
}

func (e *ErrSessionExpired) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "the session has expired; please log in again"
}

// ErrForbidden indicates the API rejected the request with a 403. During
// identity resolution this is an expected condition (the user is simply not
// provisioned) and is not surfaced as an error to the user.
type ErrForbidden struct {
	Detail string `json:"detail"`
}

func (e *ErrForbidden) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "the request is not authorized"
}

// ErrRequestFailed indicates any other non-2xx response. The server-provided
// detail message is preferred when present.
type ErrRequestFailed struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func (e *ErrRequestFailed) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsNoCredential returns true if the given error, however wrapped, is an
// *ErrNoCredential.
func IsNoCredential(err error) bool {
	_, ok := errors.Cause(err).(*ErrNoCredential)
	return ok
}

// IsSessionExpired returns true if the given error, however wrapped, is an
// *ErrSessionExpired.
func IsSessionExpired(err error) bool {
	_, ok := errors.Cause(err).(*ErrSessionExpired)
	return ok
}

// IsForbidden returns true if the given error, however wrapped, is an
// *ErrForbidden.
func IsForbidden(err error) bool {
	_, ok := errors.Cause(err).(*ErrForbidden)
	return ok
}
