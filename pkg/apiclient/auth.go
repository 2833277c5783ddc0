package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/skinovaai/skinova/pkg/api"
	"github.com/skinovaai/skinova/pkg/session"
)

// Client implements session.Service: login, signup, and token verification
// go through the same API as everything else, but without the forced-logout
// behavior — a rejected login is a displayable failure, not a session event.
var _ session.Service = (*Client)(nil)

// Login exchanges credentials for a token and identity. Authentication
// failures come back as *session.AuthError with the server's message.
func (c *Client) Login(ctx context.Context, email, password string) (string, *session.Identity, error) {
	var resp api.LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", false, api.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, authFailure(err, "Login failed")
	}
	return resp.Token, identityFromUser(resp.User), nil
}

// Signup creates an account; it does not establish a session.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	err := c.do(ctx, http.MethodPost, "/signup", false,
		api.SignupRequest{Name: name, Email: email, Password: password}, nil)
	if err != nil {
		return authFailure(err, "Signup failed")
	}
	return nil
}

// Verify resolves a stored token to an identity during startup
// reconciliation. A rejected token is an *session.AuthError so the manager
// clears the stale credential; transport errors pass through unchanged.
func (c *Client) Verify(ctx context.Context, token string) (*session.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/verify", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var body api.VerifyResponse
		if err := decodeJSON(resp, &body); err != nil {
			return nil, err
		}
		return identityFromUser(body.User), nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, session.NewAuthError(errorMessage(resp))
	default:
		return nil, &StatusError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}
}

// authFailure converts a non-2xx status into a displayable auth error,
// leaving transport errors (no response at all) untouched.
func authFailure(err error, fallback string) error {
	var se *StatusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return session.NewAuthError(se.Message)
		}
		return session.NewAuthError(fallback)
	}
	return err
}

func identityFromUser(u api.User) *session.Identity {
	return &session.Identity{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Plan:           u.Subscription,
		ReferralPoints: u.ReferralPoints,
	}
}
