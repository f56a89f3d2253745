package errors

import "errors"

// Sentinel errors shared across layers. These are base errors that can
// be matched with errors.Is() regardless of how many times they have
// been wrapped on the way up.
var (
	ErrPostNotFound        = errors.New("post not found")
	ErrSlugTaken           = errors.New("slug already in use")
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionExpired      = errors.New("session expired")
	ErrInvalidInput        = errors.New("invalid input")
)

// IsPostNotFound checks if an error represents a missing post.
func IsPostNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsSlugTaken checks if an error represents a slug uniqueness violation.
func IsSlugTaken(err error) bool {
	return errors.Is(err, ErrSlugTaken)
}

// IsDatabaseError checks if an error represents a database-related problem.
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}

// IsAuthError checks if an error represents failed or expired authentication.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrSessionExpired)
}

// IsValidationError checks if an error represents invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
