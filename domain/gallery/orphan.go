package gallery

import "time"

// OrphanFile is a storage object whose owning photo row is gone (or
// about to be). The cascade queues one row per stored object inside its
// transaction; the post-commit cleanup and the reconciliation sweep
// delete the binary and then the row.
type OrphanFile struct {
	ID       int64
	Kind     OrphanKind
	Name     string
	QueuedAt time.Time
}
