package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	ErrNotFound          = errors.New("requested resource not found")
	ErrMailerUnavailable = errors.New("email service is not available")
	ErrMailNotConfigured = errors.New("email service is not configured")
)
