package auth

import "errors"

var (
	// ErrDuplicateEmail rejects a registration whose email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials rejects a login. It is deliberately the same
	// for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated marks a protected operation attempted without a
	// resolved identity.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrBridgeUnavailable marks a failed delegated-auth exchange. Callers
	// downgrade it to a normal negative session check.
	ErrBridgeUnavailable = errors.New("auth bridge unavailable")
)
