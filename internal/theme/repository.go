package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// settingCurrentTheme is the settings-table key for the active theme ID.
const settingCurrentTheme = "current_theme"

// SettingsRepository persists the current theme selection.
type SettingsRepository interface {
	CurrentTheme(ctx context.Context) (string, error)
	SetCurrentTheme(ctx context.Context, id string) error
}

// settingsRepository implements SettingsRepository over the settings table.
type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a settings repository backed by the given DB pool.
func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// CurrentTheme returns the persisted theme ID, or the default when no
// selection has been stored yet.
func (r *settingsRepository) CurrentTheme(ctx context.Context) (string, error) {
	query := `SELECT value FROM settings WHERE name = ?`

	var id string
	err := r.db.QueryRowContext(ctx, query, settingCurrentTheme).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultID, nil
	}
	if err != nil {
		return "", fmt.Errorf("querying current theme: %w", err)
	}

	return id, nil
}

// SetCurrentTheme stores the theme ID, inserting or updating the row.
func (r *settingsRepository) SetCurrentTheme(ctx context.Context, id string) error {
	query := `INSERT INTO settings (name, value) VALUES (?, ?)
	          ON DUPLICATE KEY UPDATE value = VALUES(value)`

	_, err := r.db.ExecContext(ctx, query, settingCurrentTheme, id)
	if err != nil {
		return fmt.Errorf("storing current theme: %w", err)
	}

	return nil
}
