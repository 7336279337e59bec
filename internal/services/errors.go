package services

import "errors"

var (
	// ErrValidation matches every rejected registration field except a
	// duplicate email, which is reported on its own.
	ErrValidation = errors.New("validation error")

	ErrInvalidName    = errors.New("name must not contain < > \" or '")
	ErrInvalidAge     = errors.New("age must be a whole number")
	ErrUnderage       = errors.New("age must be at least 18")
	ErrInvalidEmail   = errors.New("email must contain exactly one '@' and a '.'")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrWeakPassword   = errors.New("password needs 6+ characters, an uppercase letter and a digit")

	// ErrAuthFailed is returned for an unknown email and for a wrong
	// password alike.
	ErrAuthFailed = errors.New("invalid email or password")

	ErrUserNotFound   = errors.New("user not found")
	ErrIncompleteQuiz = errors.New("quiz submission is incomplete")
	ErrInvalidAnswer  = errors.New("invalid answer")

	ErrNoData        = errors.New("no users registered")
	ErrNoSubmissions = errors.New("no quiz submissions")
)

// ValidationError names the registration field that was rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	if errors.Is(e.Err, ErrDuplicateEmail) {
		return []error{e.Err}
	}
	return []error{e.Err, ErrValidation}
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
