package constants

// Upstream provider error codes
const (
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodeNetworkError        = "NETWORK_ERROR"
	ErrCodeRateLimited         = "RATE_LIMITED"
	ErrCodeResourceNotFound    = "RESOURCE_NOT_FOUND"
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeDecodeError         = "DECODE_ERROR"
	ErrCodeUpstreamError       = "UPSTREAM_ERROR"
	ErrCodeInvalidDataFormat   = "INVALID_DATA_FORMAT"
)

var DataProviderErrorMessages = map[string]string{
	ErrCodeProviderUnavailable: "The flight data provider is not available",
	ErrCodeNetworkError:        "Unable to reach the flight data provider",
	ErrCodeRateLimited:         "Rate limit exceeded at the flight data provider. Please try again later",
	ErrCodeResourceNotFound:    "The requested resource was not found at the flight data provider",
	ErrCodeBadRequest:          "The flight data provider rejected the request",
	ErrCodeDecodeError:         "The flight data provider returned an unreadable response",
	ErrCodeUpstreamError:       "The flight data provider returned an error",
	ErrCodeInvalidDataFormat:   "The data format is invalid",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DataProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
