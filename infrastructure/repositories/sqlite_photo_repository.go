package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"fotoshare/database"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// SqlitePhotoRepository implements contracts.PhotoRepository.
type SqlitePhotoRepository struct {
	*BaseRepository
}

// NewSqlitePhotoRepository creates a new photo repository.
func NewSqlitePhotoRepository(db *database.Database) contracts.PhotoRepository {
	return &SqlitePhotoRepository{BaseRepository: NewBaseRepository(db)}
}

const photoColumns = `id, owner_id, visibility, title, description, content_type,
	original_filename, stored_filename, thumbnail_filename, created_at`

func (r *SqlitePhotoRepository) GetByID(ctx context.Context, photoID int64) (*gallery.Photo, error) {
	row := r.Read(ctx).QueryRowContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE id = ?`, photoID)
	return scanPhoto(row)
}

func (r *SqlitePhotoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*gallery.Photo, error) {
	rows, err := r.Read(ctx).QueryContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list photos by owner %d: %w", ownerID, err)
	}
	return collectPhotos(rows)
}

func (r *SqlitePhotoRepository) ListAccessible(ctx context.Context, principal gallery.Principal) ([]*gallery.Photo, error) {
	userID, authenticated := principal.UserID()
	if !authenticated {
		rows, err := r.Read(ctx).QueryContext(ctx,
			`SELECT `+photoColumns+` FROM photos WHERE visibility = 'PUBLIC' ORDER BY id`)
		if err != nil {
			return nil, fmt.Errorf("list public photos: %w", err)
		}
		return collectPhotos(rows)
	}

	rows, err := r.Read(ctx).QueryContext(ctx,
		`SELECT `+photoColumns+` FROM photos
		 WHERE visibility = 'PUBLIC'
		    OR owner_id = ?
		    OR id IN (SELECT photo_id FROM shares WHERE user_id = ?)
		 ORDER BY id`, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("list accessible photos for user %d: %w", userID, err)
	}
	return collectPhotos(rows)
}

func (r *SqlitePhotoRepository) Save(ctx context.Context, photo *gallery.Photo) error {
	if photo.ID == 0 {
		res, err := r.Write(ctx).ExecContext(ctx,
			`INSERT INTO photos (owner_id, visibility, title, description, content_type,
			                     original_filename, stored_filename, thumbnail_filename)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			photo.OwnerID, photo.Visibility.String(), photo.Title, photo.Description,
			photo.ContentType, photo.OriginalFilename, photo.StoredFilename, photo.ThumbnailFilename)
		if err != nil {
			return fmt.Errorf("insert photo: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert photo id: %w", err)
		}
		photo.ID = id
		return nil
	}

	// Owner is immutable after creation; it is deliberately absent from
	// the update set.
	_, err := r.Write(ctx).ExecContext(ctx,
		`UPDATE photos SET visibility = ?, title = ?, description = ?, content_type = ?,
		        original_filename = ?, stored_filename = ?, thumbnail_filename = ?
		 WHERE id = ?`,
		photo.Visibility.String(), photo.Title, photo.Description, photo.ContentType,
		photo.OriginalFilename, photo.StoredFilename, photo.ThumbnailFilename, photo.ID)
	if err != nil {
		return fmt.Errorf("update photo %d: %w", photo.ID, err)
	}
	return nil
}

func (r *SqlitePhotoRepository) Delete(ctx context.Context, photoID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, photoID)
	if err != nil {
		return fmt.Errorf("delete photo %d: %w", photoID, err)
	}
	return nil
}

func scanPhoto(row rowScanner) (*gallery.Photo, error) {
	var photo gallery.Photo
	var visibility string
	err := row.Scan(&photo.ID, &photo.OwnerID, &visibility, &photo.Title,
		&photo.Description, &photo.ContentType, &photo.OriginalFilename,
		&photo.StoredFilename, &photo.ThumbnailFilename, &photo.CreatedAt)
	if err != nil {
		return nil, notFound(err, "scan photo")
	}
	photo.Visibility, err = gallery.ParseVisibility(visibility)
	if err != nil {
		return nil, fmt.Errorf("photo %d: %w", photo.ID, err)
	}
	return &photo, nil
}

func collectPhotos(rows *sql.Rows) ([]*gallery.Photo, error) {
	defer rows.Close()

	var photos []*gallery.Photo
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}
