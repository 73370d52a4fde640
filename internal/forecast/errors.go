package forecast

import "fmt"

// NetworkError is a failed fetch for a single location: transport error,
// non-2xx status or a body that does not match the forecast schema.
type NetworkError struct {
	Location   string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	msg := fmt.Sprintf("forecast for %s: %s", e.Location, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new network error
func NewNetworkError(location, message string, err error) *NetworkError {
	return &NetworkError{
		Location: location,
		Message:  message,
		Err:      err,
	}
}
