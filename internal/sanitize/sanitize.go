// Package sanitize cleans user-generated text before it is stored.
// Uses bluemonday to strip HTML (script tags, event handlers,
// javascript: URLs) from fields like website names and descriptions,
// which are rendered verbatim by clients.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the singleton bluemonday policy. Website descriptions and
// display names are plain text, so the strict policy (no tags at all)
// applies. Initialized once via sync.Once for thread-safe lazy init.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, initializing it on first call.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text strips all HTML from user-provided text and trims surrounding
// whitespace. MUST be called on every free-text field before storing it
// in the database.
func Text(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(getPolicy().Sanitize(input))
}
