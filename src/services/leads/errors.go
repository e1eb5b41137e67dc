package leads

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("duplicate submission")
)

// Error carries the message shown to the applicant along with its kind
// (ErrValidation or ErrConflict) for errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func validationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func conflictError(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}
