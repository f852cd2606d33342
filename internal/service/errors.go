package service

// ValidationError indicates a required field is missing or malformed
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError indicates a uniqueness rule was violated (restaurant name,
// user email)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError indicates a failed credential check. The message is identical for
// unknown email and wrong password so callers cannot tell which check failed.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError indicates the requested entity does not exist
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
