package kitabu

// SystemConfig is the pair of registration policy flags administrators can
// toggle from the settings page.
type SystemConfig struct {
	AllowPublicSignup bool `json:"allow_public_signup"`
	RequireWhitelist  bool `json:"require_whitelist"`
}

// SystemConfigUpdate carries the flags to change. Nil fields are left
// untouched by the API.
type SystemConfigUpdate struct {
	AllowPublicSignup *bool
	RequireWhitelist  *bool
}

type WhitelistEntry struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email"`
	AddedBy string `json:"added_by,omitempty"`
}
