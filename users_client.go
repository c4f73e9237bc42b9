package kitabu

import (
	"context"
	"fmt"
	"net/http"
)

// UsersClient is the specialized client for staff user records: the current
// user's own system record, the staff roster, and role assignment.
type UsersClient interface {
	// Current resolves the bearer token's own system user record.
	Current(ctx context.Context, token string) (User, error)
	ListStaff(ctx context.Context, token string) ([]User, error)
	UpdateRole(
		ctx context.Context,
		token string,
		userID string,
		role Role,
	) (User, error)
	// CheckPolicy asks the backend whether signup is currently possible for
	// the given email. It requires no credential.
	CheckPolicy(ctx context.Context, email string) (AuthPolicy, error)
	// Health requires no credential.
	Health(ctx context.Context) (Health, error)
}

type usersClient struct {
	*BaseClient
}

// NewUsersClient returns a specialized client for staff user records.
func NewUsersClient(apiAddress string, allowInsecure bool) UsersClient {
	return &usersClient{
		BaseClient: &BaseClient{
			APIAddress: apiAddress,
			HTTPClient: defaultHTTPClient(allowInsecure),
		},
	}
}

func (u *usersClient) Current(
	ctx context.Context,
	token string,
) (User, error) {
	user := User{}
	return user, u.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "auth/me",
			AuthHeaders: u.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &user,
		},
	)
}

func (u *usersClient) ListStaff(
	ctx context.Context,
	token string,
) ([]User, error) {
	staff := []User{}
	return staff, u.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "staff",
			AuthHeaders: u.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &staff,
		},
	)
}

func (u *usersClient) UpdateRole(
	ctx context.Context,
	token string,
	userID string,
	role Role,
) (User, error) {
	user := User{}
	return user, u.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method: http.MethodPatch,
			Path:   fmt.Sprintf("users/%s/role", userID),
			AuthHeaders: u.BearerTokenAuthHeaders(token),
			ReqBodyObj: struct {
				Role Role `json:"role"`
			}{Role: role},
			SuccessCode: http.StatusOK,
			RespObj:     &user,
		},
	)
}

func (u *usersClient) CheckPolicy(
	ctx context.Context,
	email string,
) (AuthPolicy, error) {
	queryParams := map[string]string{}
	if email != "" {
		queryParams["email"] = email
	}
	policy := AuthPolicy{}
	return policy, u.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "auth/check-policy",
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &policy,
		},
	)
}

func (u *usersClient) Health(ctx context.Context) (Health, error) {
	health := Health{}
	return health, u.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "health",
			SuccessCode: http.StatusOK,
			RespObj:     &health,
		},
	)
}
