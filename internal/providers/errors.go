package providers

import (
	"errors"
	"fmt"

	"skyboard/flightdeck/internal/constants"
)

// ProviderError carries a stable code alongside the underlying cause
type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ErrProviderUnavailable is wrapped by every error of an unavailable provider
var ErrProviderUnavailable = errors.New(constants.GetErrorMessage(constants.ErrCodeProviderUnavailable))

// ErrorCode extracts the ProviderError code from err, or "" when err is not one
func ErrorCode(err error) string {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ""
}

// IsUnavailable reports whether err comes from a provider that cannot serve requests
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}
