package repositories

import (
	"context"
	"fmt"

	"fotoshare/database"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// SqliteUserRepository implements contracts.UserRepository.
type SqliteUserRepository struct {
	*BaseRepository
}

// NewSqliteUserRepository creates a new user repository.
func NewSqliteUserRepository(db *database.Database) contracts.UserRepository {
	return &SqliteUserRepository{BaseRepository: NewBaseRepository(db)}
}

const userColumns = `id, username, email, password_hash, enabled, role, created_at`

func (r *SqliteUserRepository) GetByID(ctx context.Context, userID int64) (*gallery.User, error) {
	row := r.Read(ctx).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
	return scanUser(row)
}

func (r *SqliteUserRepository) GetByUsername(ctx context.Context, username string) (*gallery.User, error) {
	row := r.Read(ctx).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *SqliteUserRepository) GetByEmail(ctx context.Context, email string) (*gallery.User, error) {
	row := r.Read(ctx).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SqliteUserRepository) Save(ctx context.Context, user *gallery.User) error {
	if user.ID == 0 {
		res, err := r.Write(ctx).ExecContext(ctx,
			`INSERT INTO users (username, email, password_hash, enabled, role)
			 VALUES (?, ?, ?, ?, ?)`,
			user.Username, user.Email, user.PasswordHash, user.Enabled, user.Role)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert user id: %w", err)
		}
		user.ID = id
		return nil
	}

	_, err := r.Write(ctx).ExecContext(ctx,
		`UPDATE users SET username = ?, email = ?, password_hash = ?, enabled = ?, role = ?
		 WHERE id = ?`,
		user.Username, user.Email, user.PasswordHash, user.Enabled, user.Role, user.ID)
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return nil
}

func (r *SqliteUserRepository) List(ctx context.Context) ([]*gallery.User, error) {
	rows, err := r.Read(ctx).QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*gallery.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *SqliteUserRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.Write(ctx).ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*gallery.User, error) {
	var user gallery.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Enabled, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, notFound(err, "scan user")
	}
	return &user, nil
}
