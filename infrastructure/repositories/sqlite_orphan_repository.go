package repositories

import (
	"context"
	"fmt"

	"fotoshare/database"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// SqliteOrphanFileRepository implements the storage cleanup queue,
// contracts.OrphanFileRepository. Rows are written inside the cascade's
// transaction; deletion happens post-commit once the binary is gone.
type SqliteOrphanFileRepository struct {
	*BaseRepository
}

// NewSqliteOrphanFileRepository creates a new orphan file repository.
func NewSqliteOrphanFileRepository(db *database.Database) contracts.OrphanFileRepository {
	return &SqliteOrphanFileRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *SqliteOrphanFileRepository) Record(ctx context.Context, orphan *gallery.OrphanFile) error {
	res, err := r.Write(ctx).ExecContext(ctx,
		`INSERT INTO orphan_files (kind, name) VALUES (?, ?)`,
		orphan.Kind.String(), orphan.Name)
	if err != nil {
		return fmt.Errorf("record orphan %q: %w", orphan.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("record orphan id: %w", err)
	}
	orphan.ID = id
	return nil
}

func (r *SqliteOrphanFileRepository) List(ctx context.Context) ([]*gallery.OrphanFile, error) {
	rows, err := r.Read(ctx).QueryContext(ctx,
		`SELECT id, kind, name, queued_at FROM orphan_files ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list orphans: %w", err)
	}
	defer rows.Close()

	var orphans []*gallery.OrphanFile
	for rows.Next() {
		var orphan gallery.OrphanFile
		var kind string
		if err := rows.Scan(&orphan.ID, &kind, &orphan.Name, &orphan.QueuedAt); err != nil {
			return nil, fmt.Errorf("scan orphan: %w", err)
		}
		orphan.Kind, err = gallery.ParseOrphanKind(kind)
		if err != nil {
			return nil, fmt.Errorf("orphan %d: %w", orphan.ID, err)
		}
		orphans = append(orphans, &orphan)
	}
	return orphans, rows.Err()
}

func (r *SqliteOrphanFileRepository) Delete(ctx context.Context, orphanID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM orphan_files WHERE id = ?`, orphanID)
	if err != nil {
		return fmt.Errorf("delete orphan %d: %w", orphanID, err)
	}
	return nil
}
