package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fotoshare/database"
	"fotoshare/domain/contracts"
)

// BaseRepository provides shared database access that can be embedded
// in all repositories. Reads go to the read pool and writes to the
// serialized write connection, unless the context carries a
// transaction, in which case both join it.
type BaseRepository struct {
	db *database.Database
}

// NewBaseRepository creates a new BaseRepository with database access
func NewBaseRepository(db *database.Database) *BaseRepository {
	return &BaseRepository{db: db}
}

// Read returns the handle for SELECT statements.
func (b *BaseRepository) Read(ctx context.Context) database.DBTX {
	return b.db.Read(ctx)
}

// Write returns the handle for INSERT/UPDATE/DELETE statements.
func (b *BaseRepository) Write(ctx context.Context) database.DBTX {
	return b.db.Write(ctx)
}

// notFound maps sql.ErrNoRows to the contract sentinel and wraps
// everything else.
func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return contracts.ErrNotFound
	}
	return fmt.Errorf("%s: %w", what, err)
}
