package contracts

import (
	"context"

	"fotoshare/domain/gallery"
)

// AuthContextProvider resolves a request credential to a principal. An
// empty or unverifiable credential resolves to the anonymous principal,
// never to an error: the core treats "cannot identify" as "no principal".
type AuthContextProvider interface {
	Resolve(ctx context.Context, credential string) gallery.Principal
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
