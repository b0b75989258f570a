package gallery

import "time"

// Photo is an uploaded image. Exactly one owner, assigned at upload and
// never reassigned.
type Photo struct {
	ID                int64
	OwnerID           int64
	Visibility        Visibility
	Title             string
	Description       string
	ContentType       string
	OriginalFilename  string
	StoredFilename    string
	ThumbnailFilename string
	CreatedAt         time.Time
}

// IsOwnedBy reports whether the photo belongs to the given user.
func (p *Photo) IsOwnedBy(userID int64) bool {
	return p.OwnerID == userID
}

// IsPublic reports whether the photo is readable without a grant.
func (p *Photo) IsPublic() bool {
	return p.Visibility == VisibilityPublic
}
