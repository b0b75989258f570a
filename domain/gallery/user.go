package gallery

import "time"

// User is an account holder. Users own photos and albums, author
// commentaries, and receive share grants.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Enabled      bool
	Role         string
	CreatedAt    time.Time
}
