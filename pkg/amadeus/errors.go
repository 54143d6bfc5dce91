package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// ErrMalformedResponse indicates the provider answered with a success status
// but an unexpected payload shape.
var ErrMalformedResponse = errors.New("amadeus: malformed response")

// ErrProviderTimeout indicates a provider call exceeded its deadline.
var ErrProviderTimeout = errors.New("amadeus: provider timeout")

// AuthError is a rejected client-credentials exchange. Status and Body are
// the provider's, verbatim.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("amadeus: token exchange rejected with status %d: %s", e.Status, e.Body)
}

// APIError is a non-success status from a search or booking call. Body
// carries the provider's error payload untouched so callers can inspect
// provider-specific diagnostics (e.g. invalid airport codes).
type APIError struct {
	Status int
	Body   json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amadeus: provider returned status %d: %s", e.Status, string(e.Body))
}

// classifyTransport maps deadline and network timeouts to ErrProviderTimeout
// and leaves every other transport error as-is.
func classifyTransport(err error) error {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return err
}
