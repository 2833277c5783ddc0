package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/skinovaai/skinova/pkg/api"
)

// ErrUnauthorized is returned when an authenticated request gets a 401.
// By the time the caller sees it, the session has already been invalidated.
var ErrUnauthorized = errors.New("apiclient: unauthorized")

// StatusError is a non-2xx response that is not a 401, carrying the server's
// displayable message.
type StatusError struct {
	Message string
	Status  int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// errorMessage extracts the server's message from an error response body,
// falling back to the generic status text.
func errorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var body api.Error
		if json.Unmarshal(data, &body) == nil && body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
