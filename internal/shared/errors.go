package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthenticated indicates a missing or expired credential.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotLoaded indicates a page action before reference data is ready.
	ErrNotLoaded = errors.New("page data not loaded")
)

// ValidationError reports a client-side form rejection. The reason is the
// exact text shown to the user; no request is issued when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError constructs a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a client-side validation rejection.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
