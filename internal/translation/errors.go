package translation

import (
	"errors"
	"fmt"
)

// Error is a normalized provider failure. Adapters convert every backend
// error (transport, auth, rate limit, malformed or empty response) into an
// *Error so that nothing provider-specific crosses the adapter boundary.
type Error struct {
	Provider string
	Message  string
	cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s translation failed: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func newError(provider, format string, args ...any) *Error {
	return &Error{Provider: provider, Message: fmt.Sprintf(format, args...)}
}

func wrapError(provider string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Provider: provider, Message: err.Error(), cause: err}
}

// IsProviderError reports whether err is a normalized provider failure.
func IsProviderError(err error) bool {
	var pe *Error
	return errors.As(err, &pe)
}
