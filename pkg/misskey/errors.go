package misskey

import (
	"errors"
	"fmt"
)

// error taxonomy of the client, check with errors.Is
var (
	ErrConnectionRefused = errors.New("misskey unreachable")
	ErrRemoteServer      = errors.New("misskey server error")
	ErrRemoteRejected    = errors.New("misskey rejected request")
)

// APIError is a non-2xx response of the API
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Unwrap maps status codes to ErrRemoteServer (5xx) or ErrRemoteRejected (anything else)
func (e *APIError) Unwrap() error {
	if e.StatusCode >= 500 {
		return ErrRemoteServer
	}
	return ErrRemoteRejected
}

// isServerError is the retry classifier for mutating calls
func isServerError(err error) bool {
	return errors.Is(err, ErrRemoteServer)
}
