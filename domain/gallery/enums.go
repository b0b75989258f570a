package gallery

import "fmt"

// Permission is the level carried by a share grant.
// Ownership is not a Permission; it sits above ADMIN (see EffectiveLevel).
type Permission int

const (
	PermissionComment Permission = iota
	PermissionAdmin
)

func (p Permission) String() string {
	switch p {
	case PermissionComment:
		return "COMMENT"
	case PermissionAdmin:
		return "ADMIN"
	default:
		return fmt.Sprintf("Unknown (%d)", int(p))
	}
}

// ParsePermission converts the stored/wire form back to a Permission.
func ParsePermission(s string) (Permission, error) {
	switch s {
	case "COMMENT":
		return PermissionComment, nil
	case "ADMIN":
		return PermissionAdmin, nil
	default:
		return 0, fmt.Errorf("invalid permission %q", s)
	}
}

// Visibility controls who may read a photo without a share grant.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPublic
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "PRIVATE"
	case VisibilityPublic:
		return "PUBLIC"
	default:
		return fmt.Sprintf("Unknown (%d)", int(v))
	}
}

func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "PRIVATE":
		return VisibilityPrivate, nil
	case "PUBLIC":
		return VisibilityPublic, nil
	default:
		return 0, fmt.Errorf("invalid visibility %q", s)
	}
}

// EffectiveLevel is the permission the resolver computes for a
// (principal, photo) pair. LevelView is what a PUBLIC photo yields to a
// principal with no ownership and no share: read access only, below
// COMMENT. LevelOwner sits above LevelAdmin because a share at ADMIN
// still does not grant delete.
type EffectiveLevel int

const (
	LevelNone EffectiveLevel = iota
	LevelView
	LevelComment
	LevelAdmin
	LevelOwner
)

func (l EffectiveLevel) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelView:
		return "VIEW"
	case LevelComment:
		return "COMMENT"
	case LevelAdmin:
		return "ADMIN"
	case LevelOwner:
		return "OWNER"
	default:
		return fmt.Sprintf("Unknown (%d)", int(l))
	}
}

// AtLeast reports whether l grants everything other does.
func (l EffectiveLevel) AtLeast(other EffectiveLevel) bool {
	return l >= other
}

// OrphanKind tags a queued storage cleanup entry with the store it
// belongs to.
type OrphanKind int

const (
	OrphanFileObject OrphanKind = iota
	OrphanThumbnail
)

func (k OrphanKind) String() string {
	switch k {
	case OrphanFileObject:
		return "file"
	case OrphanThumbnail:
		return "thumbnail"
	default:
		return fmt.Sprintf("Unknown (%d)", int(k))
	}
}

func ParseOrphanKind(s string) (OrphanKind, error) {
	switch s {
	case "file":
		return OrphanFileObject, nil
	case "thumbnail":
		return OrphanThumbnail, nil
	default:
		return 0, fmt.Errorf("invalid orphan kind %q", s)
	}
}
