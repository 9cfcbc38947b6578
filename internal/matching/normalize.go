// Package matching implements the cross-provider name reconciliation
// primitives: canonical-form normalization, alias-aware lookup indices, the
// exact-then-partial matcher, and the keyword level classifier.
package matching

import "strings"

var canonicalReplacer = strings.NewReplacer("-", " ", "_", " ")

// Normalize reduces free text to the canonical form used for all lookups:
// lower-cased, hyphens and underscores turned into spaces, surrounding
// whitespace trimmed. Two names normalize equal iff they are treated as the
// same entity. Idempotent; empty input yields empty output.
func Normalize(name string) string {
	return strings.TrimSpace(canonicalReplacer.Replace(strings.ToLower(name)))
}
