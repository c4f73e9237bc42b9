package kitabu

// User is the system user record: the backend-resident profile resolved from
// an externally-authenticated identity, distinct from the identity provider's
// own account object.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     Role   `json:"role"`
}

// AuthPolicy is the backend's answer to a pre-signup policy check.
type AuthPolicy struct {
	AllowPublicSignup bool `json:"allow_public_signup"`
	RequireWhitelist  bool `json:"require_whitelist"`
	EmailWhitelisted  bool `json:"email_whitelisted,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
