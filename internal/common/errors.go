// Package common defines shared constants and sentinel errors used across
// the mymoney client and the development store. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// ErrNotFound means a referenced entity is absent from the remote
	// collection (e.g. no user record with the given username).
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials means the username resolved but the password
	// did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable means the transport call against the remote store did
	// not complete. It is propagated unchanged to the caller; there is no
	// automatic retry.
	ErrUnavailable = errors.New("store unavailable")

	// ErrValidation means a required field was missing or malformed, either
	// on user input or on a record received from the remote store.
	ErrValidation = errors.New("validation error")
)
