package shipit

import (
	"context"
	"net/http"
)

// GetCurrentUserRequest returns the user owning the token. The user is
// read from the "data" member of the response.
func GetCurrentUserRequest() Request[*UserResponse] {
	return Request[*UserResponse]{
		Name:   "GetCurrentUser",
		Method: http.MethodGet,
		Path:   "/v1/users/me",
		Decode: decodeDataMember[UserResponse]("UserResponse"),
	}
}

// RegisterRequest creates a new account.
func RegisterRequest(data *Registration) Request[*RegistrationResponse] {
	return Request[*RegistrationResponse]{
		Name:   "Register",
		Method: http.MethodPut,
		Path:   "/v1/register",
		Body:   data,
		Decode: decodeInto[RegistrationResponse]("RegistrationResponse"),
	}
}

// UserResource reads and registers accounts.
type UserResource struct {
	c *Connector
}

// Current returns the user owning the token.
func (r *UserResource) Current(ctx context.Context) (*UserResponse, error) {
	return Send(ctx, r.c, GetCurrentUserRequest())
}

// Register creates an account from data.
func (r *UserResource) Register(ctx context.Context, data *Registration) (*RegistrationResponse, error) {
	return Send(ctx, r.c, RegisterRequest(data))
}
