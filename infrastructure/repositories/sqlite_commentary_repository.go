package repositories

import (
	"context"
	"fmt"

	"fotoshare/database"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// SqliteCommentaryRepository implements contracts.CommentaryRepository.
type SqliteCommentaryRepository struct {
	*BaseRepository
}

// NewSqliteCommentaryRepository creates a new commentary repository.
func NewSqliteCommentaryRepository(db *database.Database) contracts.CommentaryRepository {
	return &SqliteCommentaryRepository{BaseRepository: NewBaseRepository(db)}
}

const commentaryColumns = `id, photo_id, author_id, text, created_at`

func (r *SqliteCommentaryRepository) GetByID(ctx context.Context, commentID int64) (*gallery.Commentary, error) {
	row := r.Read(ctx).QueryRowContext(ctx,
		`SELECT `+commentaryColumns+` FROM commentaries WHERE id = ?`, commentID)
	return scanCommentary(row)
}

func (r *SqliteCommentaryRepository) ListByPhoto(ctx context.Context, photoID int64) ([]*gallery.Commentary, error) {
	rows, err := r.Read(ctx).QueryContext(ctx,
		`SELECT `+commentaryColumns+` FROM commentaries WHERE photo_id = ? ORDER BY created_at, id`,
		photoID)
	if err != nil {
		return nil, fmt.Errorf("list comments of photo %d: %w", photoID, err)
	}
	defer rows.Close()

	var comments []*gallery.Commentary
	for rows.Next() {
		comment, err := scanCommentary(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *SqliteCommentaryRepository) Save(ctx context.Context, comment *gallery.Commentary) error {
	if comment.ID == 0 {
		res, err := r.Write(ctx).ExecContext(ctx,
			`INSERT INTO commentaries (photo_id, author_id, text) VALUES (?, ?, ?)`,
			comment.PhotoID, comment.AuthorID, comment.Text)
		if err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert comment id: %w", err)
		}
		comment.ID = id
		return nil
	}

	_, err := r.Write(ctx).ExecContext(ctx,
		`UPDATE commentaries SET text = ? WHERE id = ?`, comment.Text, comment.ID)
	if err != nil {
		return fmt.Errorf("update comment %d: %w", comment.ID, err)
	}
	return nil
}

func (r *SqliteCommentaryRepository) Delete(ctx context.Context, commentID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM commentaries WHERE id = ?`, commentID)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}

func (r *SqliteCommentaryRepository) DeleteByPhoto(ctx context.Context, photoID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM commentaries WHERE photo_id = ?`, photoID)
	if err != nil {
		return fmt.Errorf("delete comments of photo %d: %w", photoID, err)
	}
	return nil
}

func (r *SqliteCommentaryRepository) DeleteByAuthor(ctx context.Context, authorID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx,
		`DELETE FROM commentaries WHERE author_id = ?`, authorID)
	if err != nil {
		return fmt.Errorf("delete comments of author %d: %w", authorID, err)
	}
	return nil
}

func scanCommentary(row rowScanner) (*gallery.Commentary, error) {
	var comment gallery.Commentary
	err := row.Scan(&comment.ID, &comment.PhotoID, &comment.AuthorID, &comment.Text, &comment.CreatedAt)
	if err != nil {
		return nil, notFound(err, "scan comment")
	}
	return &comment, nil
}
