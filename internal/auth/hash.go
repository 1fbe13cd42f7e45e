package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the plaintext
// password. Deterministic and unsalted: the users table was populated by
// earlier deployments with exactly this scheme, and every stored digest
// must keep verifying. Digests are compared for equality; the plaintext is
// never stored or logged.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
