package identity

import "context"

// Identity is the external identity provider's notion of the signed-in
// account. It is distinct from the system user record the backend keeps for
// the same person.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Provider abstracts the external identity provider backing the staff
// dashboard session.
type Provider interface {
	// CurrentIdentity returns the signed-in identity, or nil when no
	// identity is present.
	CurrentIdentity(context.Context) (*Identity, error)
	// AccessToken returns a short-lived token for calling the backend. It is
	// obtained on demand and never persisted by this code.
	AccessToken(context.Context) (string, error)
}
