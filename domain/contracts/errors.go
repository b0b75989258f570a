package contracts

import "errors"

// Sentinel errors shared by the ports and the services built on them.
// Resolver read paths translate ErrNotFound into a plain denial; only
// write paths surface it to callers.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("already exists")

	// ErrSelfShare rejects a grant whose recipient already owns the
	// photo. Ownership grants more than any share can.
	ErrSelfShare = errors.New("share recipient owns the photo")
)
