// Package database provides connection setup for MariaDB and Redis.
// This file validates migration SQL files to catch schema mismatches early.
package database

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// migrationsDir returns the absolute path to migrations/ from the project root.
func migrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	// thisFile is internal/database/migrate_test.go, project root is two dirs up.
	projectRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")
	dir := filepath.Join(projectRoot, "migrations")
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("migrations directory not found at %s: %v", dir, err)
	}
	return dir
}

// TestMigrations_UpDownPairs ensures every .up.sql has a matching .down.sql.
func TestMigrations_UpDownPairs(t *testing.T) {
	dir := migrationsDir(t)
	upFiles, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		t.Fatalf("globbing up files: %v", err)
	}
	if len(upFiles) == 0 {
		t.Fatal("no migration files found")
	}

	for _, up := range upFiles {
		down := strings.Replace(up, ".up.sql", ".down.sql", 1)
		if _, err := os.Stat(down); err != nil {
			t.Errorf("missing down migration for %s", filepath.Base(up))
		}
	}
}

// TestMigrations_UsernameCollation ensures the users.username column keeps
// its binary collation. Losing it would silently turn username uniqueness
// case-insensitive and merge distinct accounts.
func TestMigrations_UsernameCollation(t *testing.T) {
	dir := migrationsDir(t)
	data, err := os.ReadFile(filepath.Join(dir, "000001_create_users.up.sql"))
	if err != nil {
		t.Fatalf("reading users migration: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "utf8mb4_bin") {
		t.Error("users.username must use the utf8mb4_bin collation")
	}
	if !strings.Contains(content, "UNIQUE KEY") {
		t.Error("users.username must carry a unique constraint")
	}
}

// TestMigrations_AdminSeed validates the seeded administrator row: the
// reserved username, an email, admin flag, and a digest that matches the
// documented bootstrap password.
func TestMigrations_AdminSeed(t *testing.T) {
	dir := migrationsDir(t)
	data, err := os.ReadFile(filepath.Join(dir, "000001_create_users.up.sql"))
	if err != nil {
		t.Fatalf("reading users migration: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "'admin'") {
		t.Error("expected seeded admin account")
	}
	// SHA-256("admin123"), the documented bootstrap password.
	if !strings.Contains(content, "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9") {
		t.Error("admin seed digest does not match the bootstrap password")
	}
}

// TestMigrations_SeedRatings scans catalog INSERTs and validates every
// rating sits in the 1-5 range the API enforces for user entries.
func TestMigrations_SeedRatings(t *testing.T) {
	dir := migrationsDir(t)
	data, err := os.ReadFile(filepath.Join(dir, "000002_create_websites.up.sql"))
	if err != nil {
		t.Fatalf("reading websites migration: %v", err)
	}

	// Seed rows end in ", <rating>)".
	rowPattern := regexp.MustCompile(`,\s*([0-9]+)\)[,;]`)
	matches := rowPattern.FindAllStringSubmatch(string(data), -1)
	if len(matches) == 0 {
		t.Fatal("no seeded catalog rows found")
	}

	for _, match := range matches {
		if match[1] < "1" || match[1] > "5" || len(match[1]) != 1 {
			t.Errorf("seeded rating %s outside 1-5", match[1])
		}
	}
}
