package service

import "errors"

// Failure taxonomy shared by the services. Handlers map these onto HTTP
// status codes; none of them is retried automatically.
var (
	// ErrInvalidCredentials covers bad email/password pairs and sign-up
	// conflicts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists is returned by Register when the email is taken.
	ErrUserExists = errors.New("user already exists")

	// ErrUnauthorized is returned when an operation is attempted without a
	// valid session.
	ErrUnauthorized = errors.New("not authorized")

	// ErrValidation is returned when a payload is rejected before any
	// write is attempted (empty recipe name, empty photo label).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced row is absent and the
	// operation expected it to exist. Deletes do not return it.
	ErrNotFound = errors.New("record not found")

	// ErrStorage is returned on blob upload/delete failures, including a
	// malformed public URL coming back from the store.
	ErrStorage = errors.New("storage operation failed")
)
