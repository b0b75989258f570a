package repositories

import (
	"context"
	"fmt"

	"fotoshare/database"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// SqliteShareRepository implements the share registry,
// contracts.ShareRepository. The UNIQUE(photo_id, user_id) constraint
// backs the one-grant-per-pair invariant; Save upserts against it.
type SqliteShareRepository struct {
	*BaseRepository
}

// NewSqliteShareRepository creates a new share repository.
func NewSqliteShareRepository(db *database.Database) contracts.ShareRepository {
	return &SqliteShareRepository{BaseRepository: NewBaseRepository(db)}
}

const shareColumns = `id, photo_id, user_id, permission, created_at`

func (r *SqliteShareRepository) GetByPhotoAndUser(ctx context.Context, photoID, userID int64) (*gallery.Share, error) {
	row := r.Read(ctx).QueryRowContext(ctx,
		`SELECT `+shareColumns+` FROM shares WHERE photo_id = ? AND user_id = ?`,
		photoID, userID)
	return scanShare(row)
}

func (r *SqliteShareRepository) ListByPhoto(ctx context.Context, photoID int64) ([]*gallery.Share, error) {
	rows, err := r.Read(ctx).QueryContext(ctx,
		`SELECT `+shareColumns+` FROM shares WHERE photo_id = ? ORDER BY id`, photoID)
	if err != nil {
		return nil, fmt.Errorf("list shares of photo %d: %w", photoID, err)
	}
	defer rows.Close()

	var shares []*gallery.Share
	for rows.Next() {
		share, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, rows.Err()
}

func (r *SqliteShareRepository) Save(ctx context.Context, share *gallery.Share) error {
	res, err := r.Write(ctx).ExecContext(ctx,
		`INSERT INTO shares (photo_id, user_id, permission) VALUES (?, ?, ?)
		 ON CONFLICT (photo_id, user_id) DO UPDATE SET permission = excluded.permission`,
		share.PhotoID, share.UserID, share.Permission.String())
	if err != nil {
		return fmt.Errorf("save share: %w", err)
	}
	if share.ID == 0 {
		if id, err := res.LastInsertId(); err == nil {
			share.ID = id
		}
	}
	return nil
}

func (r *SqliteShareRepository) DeleteByPhotoAndUser(ctx context.Context, photoID, userID int64) error {
	// Zero rows affected is fine: revoke is idempotent.
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM shares WHERE photo_id = ? AND user_id = ?`, photoID, userID)
	if err != nil {
		return fmt.Errorf("delete share (%d, %d): %w", photoID, userID, err)
	}
	return nil
}

func (r *SqliteShareRepository) DeleteByPhoto(ctx context.Context, photoID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM shares WHERE photo_id = ?`, photoID)
	if err != nil {
		return fmt.Errorf("delete shares of photo %d: %w", photoID, err)
	}
	return nil
}

func (r *SqliteShareRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM shares WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete shares of user %d: %w", userID, err)
	}
	return nil
}

func scanShare(row rowScanner) (*gallery.Share, error) {
	var share gallery.Share
	var permission string
	err := row.Scan(&share.ID, &share.PhotoID, &share.UserID, &permission, &share.CreatedAt)
	if err != nil {
		return nil, notFound(err, "scan share")
	}
	share.Permission, err = gallery.ParsePermission(permission)
	if err != nil {
		return nil, fmt.Errorf("share %d: %w", share.ID, err)
	}
	return &share, nil
}
