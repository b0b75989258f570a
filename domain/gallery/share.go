package gallery

import "time"

// Share is a grant from a photo's owner to another user. At most one
// share exists per (photo, user) pair; a share never names the owner.
type Share struct {
	ID         int64
	PhotoID    int64
	UserID     int64
	Permission Permission
	CreatedAt  time.Time
}

// AllowsComment reports whether the grant covers commenting.
func (s *Share) AllowsComment() bool {
	return s.Permission == PermissionComment || s.Permission == PermissionAdmin
}

// AllowsEdit reports whether the grant covers metadata/visibility edits.
// COMMENT-level shares do not.
func (s *Share) AllowsEdit() bool {
	return s.Permission == PermissionAdmin
}

// Effective maps the grant to the resolver's level scale.
func (s *Share) Effective() EffectiveLevel {
	if s.Permission == PermissionAdmin {
		return LevelAdmin
	}
	return LevelComment
}
