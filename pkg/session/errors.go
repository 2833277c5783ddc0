package session

import "errors"

// Session errors.
var (
	// ErrNoCredential is returned by Store.Load when the slot is empty.
	ErrNoCredential = errors.New("session: no credential stored")
)

// AuthError carries a human-readable reason for a failed login or signup.
// The message is safe to display to the user.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError creates an AuthError with the given displayable message.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// IsAuthError reports whether err is a displayable authentication failure
// (bad credentials, duplicate account) rather than a system error.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
