package baasclient

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig    = errors.New("baasclient: invalid configuration")
	ErrAuthFailed       = errors.New("baasclient: authentication failed")
	ErrRequestFailed    = errors.New("baasclient: request failed")
	ErrUnexpectedStatus = errors.New("baasclient: unexpected status")
	ErrDecodeResponse   = errors.New("baasclient: failed to decode response")
	ErrCreateRequest    = errors.New("baasclient: failed to create request")
	ErrEncodeBody       = errors.New("baasclient: failed to encode request body")
)

// StatusError reports a response whose status code is not accepted as
// success. Error returns the raw response body so callers see the
// management API's own message text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return e.Body
	}

	return fmt.Sprintf("baasclient: service returned status %d", e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return errors.Is(target, ErrUnexpectedStatus)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

func newStatusError(statusCode int, body string) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		Body:       body,
	}
}

func IsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}
