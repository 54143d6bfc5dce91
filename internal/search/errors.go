package search

type ErrorCode string

const (
	ErrorCodeValidation        ErrorCode = "INVALID_QUERY"
	ErrorCodeAuthFailure       ErrorCode = "AUTHENTICATION_FAILURE"
	ErrorCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	ErrorCodeProviderTimeout   ErrorCode = "PROVIDER_TIMEOUT"
	ErrorCodeInternalFailure   ErrorCode = "INTERNAL_FAILURE"
)

// InvalidQueryError reports a missing or unusable required field. It is
// raised before any network call is attempted.
type InvalidQueryError struct {
	Field string
}

func (e *InvalidQueryError) Error() string {
	return "search: missing required field: " + e.Field
}
