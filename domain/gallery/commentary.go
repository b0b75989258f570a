package gallery

import "time"

// Commentary is a comment left on a photo by a user holding at least
// COMMENT permission at the time of writing.
type Commentary struct {
	ID        int64
	PhotoID   int64
	AuthorID  int64
	Text      string
	CreatedAt time.Time
}

// IsAuthoredBy reports whether the comment was written by the given user.
func (c *Commentary) IsAuthoredBy(userID int64) bool {
	return c.AuthorID == userID
}
