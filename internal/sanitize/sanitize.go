// Package sanitize normalizes free text received from clients before it
// reaches the chat core: markup is stripped and surrounding space trimmed.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds how many layers of entity escaping Text unwraps.
const maxPasses = 8

// Sanitizer strips HTML from user supplied strings. It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New returns a Sanitizer that removes every tag.
func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text removes tags, decodes the entities bluemonday escapes, and trims the result.
// Stripping repeats on the decoded text until it stops changing, so markup
// hidden behind entities (&lt;script&gt;) is removed too.
func (s *Sanitizer) Text(in string) string {
	out := in
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(s.policy.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	// Still changing: return the escaped form rather than anything decoded.
	return strings.TrimSpace(s.policy.Sanitize(out))
}
