package stations

import (
	"errors"
	"fmt"
)

// AllSourcesFailedError is returned when no location could be fetched.
// Errors holds one error per location, in location order.
type AllSourcesFailedError struct {
	Errors []error
}

func (e *AllSourcesFailedError) Error() string {
	if len(e.Errors) == 0 {
		return "all forecast sources failed"
	}
	return fmt.Sprintf("all %d forecast sources failed: %v", len(e.Errors), e.Errors[0])
}

func (e *AllSourcesFailedError) Unwrap() error {
	return errors.Join(e.Errors...)
}

func NewAllSourcesFailedError(errs []error) *AllSourcesFailedError {
	return &AllSourcesFailedError{Errors: errs}
}
