package gallery

// Principal is the resolved identity of a request: either a concrete
// user or anonymous. It is always passed explicitly; nothing in the core
// reads authentication state from ambient context.
type Principal struct {
	userID        int64
	authenticated bool
}

// Anonymous returns the principal for an unauthenticated request.
func Anonymous() Principal {
	return Principal{}
}

// UserPrincipal returns the principal for an authenticated user.
func UserPrincipal(userID int64) Principal {
	return Principal{userID: userID, authenticated: true}
}

// Authenticated reports whether the principal is a concrete user.
func (p Principal) Authenticated() bool {
	return p.authenticated
}

// UserID returns the user identity and whether one is present.
func (p Principal) UserID() (int64, bool) {
	if !p.authenticated {
		return 0, false
	}
	return p.userID, true
}

// Is reports whether the principal is the given user.
func (p Principal) Is(userID int64) bool {
	return p.authenticated && p.userID == userID
}
