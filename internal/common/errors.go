// Package common defines shared constants and sentinel errors used across
// the attendance client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential errors. The message is intentionally generic so a failed
	// login never reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Registration errors.
	ErrEmailTaken  = errors.New("email is already registered")
	ErrInvalidRole = errors.New("invalid role")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Verification errors.
	ErrCodeMismatch    = errors.New("invalid verification code")
	ErrNoActiveCode    = errors.New("no verification code has been sent")
	ErrEntryIncomplete = errors.New("all 6 digits are required")
)
