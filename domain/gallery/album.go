package gallery

import "time"

// Album is an owner-curated set of photos. There is no album-level
// sharing: only the owner may view, edit or delete an album, regardless
// of any grants on the photos it contains.
type Album struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// IsOwnedBy reports whether the album belongs to the given user.
func (a *Album) IsOwnedBy(userID int64) bool {
	return a.OwnerID == userID
}
