package website

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// Repository defines the data access contract for the catalog and the
// per-user website lists.
type Repository interface {
	ListCatalog(ctx context.Context) ([]Website, error)
	ListCatalogByCategory(ctx context.Context, category string) ([]Website, error)
	Categories(ctx context.Context) ([]string, error)
	SearchCatalog(ctx context.Context, query string) ([]Website, error)

	ListByUser(ctx context.Context, userID int64) ([]UserWebsite, error)
	CreateUserWebsite(ctx context.Context, w *UserWebsite) error
	DeleteUserWebsite(ctx context.Context, userID, id int64) error
}

// repository implements Repository with hand-written MariaDB queries.
type repository struct {
	db *sql.DB
}

// NewRepository creates a website repository backed by the given DB pool.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ListCatalog returns the full curated catalog, grouped by category and
// best-rated first within each.
func (r *repository) ListCatalog(ctx context.Context) ([]Website, error) {
	query := `SELECT id, name, url, description, category, rating
	          FROM websites ORDER BY category, rating DESC, name`

	return r.queryCatalog(ctx, query)
}

// ListCatalogByCategory returns the catalog entries in one category.
func (r *repository) ListCatalogByCategory(ctx context.Context, category string) ([]Website, error) {
	query := `SELECT id, name, url, description, category, rating
	          FROM websites WHERE category = ? ORDER BY rating DESC, name`

	return r.queryCatalog(ctx, query, category)
}

// Categories returns the distinct catalog categories in alphabetical order.
func (r *repository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM websites ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// SearchCatalog returns catalog entries whose name or description contains
// the query string.
func (r *repository) SearchCatalog(ctx context.Context, query string) ([]Website, error) {
	stmt := `SELECT id, name, url, description, category, rating
	         FROM websites
	         WHERE name LIKE CONCAT('%', ?, '%') OR description LIKE CONCAT('%', ?, '%')
	         ORDER BY rating DESC, name`

	return r.queryCatalog(ctx, stmt, query, query)
}

// queryCatalog runs a catalog SELECT and scans the rows.
func (r *repository) queryCatalog(ctx context.Context, query string, args ...any) ([]Website, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var sites []Website
	for rows.Next() {
		var w Website
		if err := rows.Scan(&w.ID, &w.Name, &w.URL, &w.Description, &w.Category, &w.Rating); err != nil {
			return nil, fmt.Errorf("scanning website row: %w", err)
		}
		sites = append(sites, w)
	}

	return sites, rows.Err()
}

// --- User lists ---

// ListByUser returns a user's personal website list, newest first.
func (r *repository) ListByUser(ctx context.Context, userID int64) ([]UserWebsite, error) {
	query := `SELECT id, user_id, name, url, description, category, rating, is_private, created_at, updated_at
	          FROM user_websites WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user websites: %w", err)
	}
	defer rows.Close()

	var sites []UserWebsite
	for rows.Next() {
		var w UserWebsite
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Name, &w.URL, &w.Description,
			&w.Category, &w.Rating, &w.IsPrivate, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning user website row: %w", err)
		}
		sites = append(sites, w)
	}

	return sites, rows.Err()
}

// CreateUserWebsite inserts a new personal list entry and assigns its ID.
func (r *repository) CreateUserWebsite(ctx context.Context, w *UserWebsite) error {
	query := `INSERT INTO user_websites (user_id, name, url, description, category, rating, is_private, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		w.UserID, w.Name, w.URL, w.Description, w.Category,
		w.Rating, w.IsPrivate, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting user website: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted website id: %w", err)
	}
	w.ID = id

	return nil
}

// DeleteUserWebsite removes a personal list entry. The user_id predicate
// keeps users from deleting each other's entries; deleting someone else's
// row reports not-found rather than forbidden.
func (r *repository) DeleteUserWebsite(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM user_websites WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting user website: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading delete result: %w", err)
	}
	if n == 0 {
		return apperror.NewNotFound("website not found")
	}

	return nil
}
