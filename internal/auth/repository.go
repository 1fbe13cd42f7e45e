package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// ErrDuplicateUsername is returned by Create when the unique constraint on
// users.username rejects the insert. The pre-registration existence check
// is only a fast path; this error is the authoritative signal that the
// name is taken.
var ErrDuplicateUsername = errors.New("duplicate username")

// mysqlDuplicateEntry is the MySQL/MariaDB error number for a unique key
// violation (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

// UserRepository defines the data access contract for user accounts.
// All SQL lives in the concrete implementation -- no SQL leaks out.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	// Admin operations.
	ListUsers(ctx context.Context, offset, limit int) ([]User, int, error)
	CountUsers(ctx context.Context) (int, error)
}

// userRepository implements UserRepository with hand-written MariaDB queries.
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository backed by the given DB pool.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user row. The caller supplies CreatedAt/UpdatedAt;
// the store assigns the ID. A unique-key violation on username is reported
// as ErrDuplicateUsername.
func (r *userRepository) Create(ctx context.Context, user *User) error {
	query := `INSERT INTO users (username, password_hash, email, display_name, avatar_path, is_admin, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.DisplayName,
		user.AvatarPath,
		user.IsAdmin,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted user id: %w", err)
	}
	user.ID = id

	return nil
}

// FindByUsername retrieves a user by exact username. The username column
// uses a binary collation, so the match is case-sensitive.
// Returns apperror.NotFound if no user exists with this username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash, email, display_name, avatar_path,
	                 is_admin, created_at, updated_at, last_login
	          FROM users WHERE username = ?`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.DisplayName,
		&user.AvatarPath,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("username not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by username: %w", err)
	}

	return user, nil
}

// UsernameExists returns true if a user with the given username already
// exists. Used during registration as a fast-path check before the insert.
func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking username existence: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin sets the last_login timestamp for the given user.
func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE users SET last_login = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}

	return nil
}

// --- Admin Operations ---

// ListUsers returns a paginated list of all users ordered by creation date.
// Also returns the total count for pagination. Excludes password_hash --
// admin list views have no business with credential data.
func (r *userRepository) ListUsers(ctx context.Context, offset, limit int) ([]User, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	query := `SELECT id, username, email, display_name, avatar_path,
	                 is_admin, created_at, updated_at, last_login
	          FROM users ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.DisplayName, &u.AvatarPath,
			&u.IsAdmin, &u.CreatedAt, &u.UpdatedAt, &u.LastLogin,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}

	return users, total, rows.Err()
}

// CountUsers returns the total number of registered users.
func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}
