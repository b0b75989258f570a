package repositories

import (
	"context"
	"fmt"

	"fotoshare/database"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// SqliteAlbumRepository implements contracts.AlbumRepository.
type SqliteAlbumRepository struct {
	*BaseRepository
}

// NewSqliteAlbumRepository creates a new album repository.
func NewSqliteAlbumRepository(db *database.Database) contracts.AlbumRepository {
	return &SqliteAlbumRepository{BaseRepository: NewBaseRepository(db)}
}

const albumColumns = `id, owner_id, name, description, created_at`

func (r *SqliteAlbumRepository) GetByID(ctx context.Context, albumID int64) (*gallery.Album, error) {
	row := r.Read(ctx).QueryRowContext(ctx,
		`SELECT `+albumColumns+` FROM albums WHERE id = ?`, albumID)
	return scanAlbum(row)
}

func (r *SqliteAlbumRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*gallery.Album, error) {
	rows, err := r.Read(ctx).QueryContext(ctx,
		`SELECT `+albumColumns+` FROM albums WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list albums by owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	var albums []*gallery.Album
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return albums, rows.Err()
}

func (r *SqliteAlbumRepository) Save(ctx context.Context, album *gallery.Album) error {
	if album.ID == 0 {
		res, err := r.Write(ctx).ExecContext(ctx,
			`INSERT INTO albums (owner_id, name, description) VALUES (?, ?, ?)`,
			album.OwnerID, album.Name, album.Description)
		if err != nil {
			return fmt.Errorf("insert album: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert album id: %w", err)
		}
		album.ID = id
		return nil
	}

	_, err := r.Write(ctx).ExecContext(ctx,
		`UPDATE albums SET name = ?, description = ? WHERE id = ?`,
		album.Name, album.Description, album.ID)
	if err != nil {
		return fmt.Errorf("update album %d: %w", album.ID, err)
	}
	return nil
}

func (r *SqliteAlbumRepository) Delete(ctx context.Context, albumID int64) error {
	if _, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM album_photos WHERE album_id = ?`, albumID); err != nil {
		return fmt.Errorf("delete album %d links: %w", albumID, err)
	}
	if _, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM albums WHERE id = ?`, albumID); err != nil {
		return fmt.Errorf("delete album %d: %w", albumID, err)
	}
	return nil
}

func (r *SqliteAlbumRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	if _, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM album_photos
		 WHERE album_id IN (SELECT id FROM albums WHERE owner_id = ?)`, ownerID); err != nil {
		return fmt.Errorf("delete album links of owner %d: %w", ownerID, err)
	}
	if _, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM albums WHERE owner_id = ?`, ownerID); err != nil {
		return fmt.Errorf("delete albums of owner %d: %w", ownerID, err)
	}
	return nil
}

func (r *SqliteAlbumRepository) AddPhoto(ctx context.Context, albumID, photoID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`INSERT OR IGNORE INTO album_photos (album_id, photo_id) VALUES (?, ?)`,
		albumID, photoID)
	if err != nil {
		return fmt.Errorf("add photo %d to album %d: %w", photoID, albumID, err)
	}
	return nil
}

func (r *SqliteAlbumRepository) RemovePhoto(ctx context.Context, albumID, photoID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM album_photos WHERE album_id = ? AND photo_id = ?`, albumID, photoID)
	if err != nil {
		return fmt.Errorf("remove photo %d from album %d: %w", photoID, albumID, err)
	}
	return nil
}

func (r *SqliteAlbumRepository) ListPhotos(ctx context.Context, albumID int64) ([]*gallery.Photo, error) {
	rows, err := r.Read(ctx).QueryContext(ctx,
		`SELECT p.id, p.owner_id, p.visibility, p.title, p.description, p.content_type,
		        p.original_filename, p.stored_filename, p.thumbnail_filename, p.created_at
		 FROM photos p
		 JOIN album_photos ap ON ap.photo_id = p.id
		 WHERE ap.album_id = ?
		 ORDER BY ap.added_at, p.id`, albumID)
	if err != nil {
		return nil, fmt.Errorf("list photos of album %d: %w", albumID, err)
	}
	return collectPhotos(rows)
}

func (r *SqliteAlbumRepository) RemovePhotoEverywhere(ctx context.Context, photoID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM album_photos WHERE photo_id = ?`, photoID)
	if err != nil {
		return fmt.Errorf("unlink photo %d from albums: %w", photoID, err)
	}
	return nil
}

func scanAlbum(row rowScanner) (*gallery.Album, error) {
	var album gallery.Album
	err := row.Scan(&album.ID, &album.OwnerID, &album.Name, &album.Description, &album.CreatedAt)
	if err != nil {
		return nil, notFound(err, "scan album")
	}
	return &album, nil
}
