// Package records implements the durable local key-value store backing the
// attendance client: the current session, the email-verified flag, and the
// registered-accounts set are each one record.
package records

import (
	"context"
)

// Repository is a small key-value contract. Get returns (nil, nil) when the
// key is absent so callers can fail soft to an empty default.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Keys of the logical records kept in local storage.
const (
	KeySession    = "auth_user"
	KeyVerified   = "email_verified"
	KeyRegistered = "registered_users"
)
