package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// assertMessage checks that err is an *apperror.AppError carrying the exact
// user-facing message.
func assertMessage(t *testing.T, err error, expected string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", expected)
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Message != expected {
		t.Errorf("expected message %q, got %q", expected, appErr.Message)
	}
}

func TestValidateUsername_Valid(t *testing.T) {
	valid := []string{
		"abc",
		"alice_99",
		"ABC_def_123",
		"张伟",
		"张三李四",
		"user张三",
		strings.Repeat("a", 50),
		strings.Repeat("汉", 50),
	}
	for _, username := range valid {
		if err := ValidateUsername(username); err != nil {
			t.Errorf("ValidateUsername(%q) = %v, want nil", username, err)
		}
	}
}

func TestValidateUsername_Empty(t *testing.T) {
	assertMessage(t, ValidateUsername(""), "username is required")
}

func TestValidateUsername_Length(t *testing.T) {
	tests := []string{
		"ab",
		"汉字", // 2 runes, even though 6 bytes
		strings.Repeat("a", 51),
		strings.Repeat("汉", 51),
	}
	for _, username := range tests {
		assertMessage(t, ValidateUsername(username),
			"username must be between 3 and 50 characters")
	}
}

func TestValidateUsername_Charset(t *testing.T) {
	tests := []string{
		"has space",
		"has-dash",
		"dot.name",
		"emoji😀name",
		"semi;colon",
	}
	for _, username := range tests {
		assertMessage(t, ValidateUsername(username),
			"username may only contain letters, digits, underscores, and Chinese characters")
	}
}

func TestValidateUsername_Reserved(t *testing.T) {
	for _, username := range []string{"admin", "Admin", "ADMIN", "aDmIn"} {
		assertMessage(t, ValidateUsername(username),
			"admin is a reserved username, please choose another")
	}

	// Names merely containing "admin" are fine.
	if err := ValidateUsername("admin2"); err != nil {
		t.Errorf("ValidateUsername(\"admin2\") = %v, want nil", err)
	}
	if err := ValidateUsername("sysadmin"); err != nil {
		t.Errorf("ValidateUsername(\"sysadmin\") = %v, want nil", err)
	}
}

func TestValidateUsername_ChecksLengthBeforeCharset(t *testing.T) {
	// Both too short and bad charset: the length message wins.
	assertMessage(t, ValidateUsername("a!"),
		"username must be between 3 and 50 characters")
}

func TestValidatePassword(t *testing.T) {
	for _, password := range []string{"", "12345", "abcde"} {
		assertMessage(t, ValidatePassword(password),
			"password must be at least 6 characters")
	}
	for _, password := range []string{"123456", "correct horse battery staple"} {
		if err := ValidatePassword(password); err != nil {
			t.Errorf("ValidatePassword(%q) = %v, want nil", password, err)
		}
	}
}

func TestValidatePassword_CountsRunes(t *testing.T) {
	// 5 CJK characters are 15 bytes but still too short.
	assertMessage(t, ValidatePassword("密码密码密"),
		"password must be at least 6 characters")

	// 6 CJK characters pass, same as 6 ASCII ones.
	if err := ValidatePassword("密码密码密码"); err != nil {
		t.Errorf("ValidatePassword(6 CJK runes) = %v, want nil", err)
	}
}

func TestValidateEmail(t *testing.T) {
	// Optional field: empty is valid.
	if err := ValidateEmail(""); err != nil {
		t.Errorf("ValidateEmail(\"\") = %v, want nil", err)
	}

	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.domain.co",
		"x_1%y@host.io",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{
		"not-an-email",
		"missing@tld",
		"@example.com",
		"two@@example.com",
		"spaces in@example.com",
		"trailing@example.com ",
	}
	for _, email := range invalid {
		assertMessage(t, ValidateEmail(email), "invalid email address")
	}
}

// --- Credential Hashing ---

func TestHashPassword_Deterministic(t *testing.T) {
	if HashPassword("secret") != HashPassword("secret") {
		t.Error("expected identical input to produce identical digests")
	}
	if HashPassword("secret") == HashPassword("Secret") {
		t.Error("expected different input to produce different digests")
	}
}

func TestHashPassword_Format(t *testing.T) {
	digest := HashPassword("anything at all")
	if len(digest) != 64 {
		t.Fatalf("expected 64-char hex digest, got %d chars", len(digest))
	}
	if digest != strings.ToLower(digest) {
		t.Error("expected lowercase hex digest")
	}
}

func TestHashPassword_KnownVector(t *testing.T) {
	// Pinned so existing account rows keep verifying across refactors.
	got := HashPassword("admin123")
	want := "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
	if got != want {
		t.Errorf("HashPassword(\"admin123\") = %s, want %s", got, want)
	}
}
