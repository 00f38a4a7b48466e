package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential means no API key was configured.
	ErrMissingCredential = errors.New("missing HEVY_API_KEY (set it in the environment or .env)")

	// ErrMalformedResponse covers payloads that decode but lack what we need,
	// as well as payloads that do not decode at all.
	ErrMalformedResponse = errors.New("unexpected response shape")
)

// HTTPError is a non-2xx answer from the API.
type HTTPError struct {
	Path       string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s: HTTP %s", e.Path, e.Status)
	if e.Body != "" {
		msg += " - " + e.Body
	}
	return msg
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
