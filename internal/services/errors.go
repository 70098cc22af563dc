package services

import "errors"

// Sentinel errors shared by the service layer. Handlers switch on these to
// pick the response status; anything else is reported as an internal error
// with a generic message.
var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserExists         = errors.New("user with this information already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectForbidden = errors.New("project owned by another user")

	// ErrProjectAccessDenied deliberately collapses "not found" and "not
	// owned" so an upload cannot be used to probe for project existence.
	ErrProjectAccessDenied = errors.New("project not found or access denied")
)

// ValidationError reports malformed or out-of-range input. It is always
// produced before any storage call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// AsValidationError extracts a *ValidationError from err, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
