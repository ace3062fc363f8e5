// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup prevents the same underlying content being emitted twice
// within one run. The fingerprint is a literal text prefix: a cheap
// near-duplicate key, not a content hash. Two articles that differ only
// after their opening characters collide, and two articles differing only
// in their opening phrasing do not; an accepted limitation of the scheme.
package dedup

import (
	"strings"

	"github.com/mweiqi/magazine-collector/pkg/types"
)

// Fingerprint returns the first n characters of the trimmed text. Texts
// shorter than n fingerprint to their whole trimmed content.
func Fingerprint(text string, n int) string {
	trimmed := strings.TrimSpace(text)
	runes := []rune(trimmed)
	if n <= 0 || len(runes) <= n {
		return trimmed
	}
	return string(runes[:n])
}

// Set tracks the fingerprints seen during one pipeline invocation. It is
// owned exclusively by the orchestrator and never accessed concurrently.
type Set struct {
	n    int
	seen map[string]struct{}
}

// NewSet builds an empty fingerprint set with the configured prefix length.
func NewSet(cfg types.DedupConfig) *Set {
	n := cfg.FingerprintLen
	if n <= 0 {
		n = types.DefaultDedupConfig().FingerprintLen
	}
	return &Set{n: n, seen: make(map[string]struct{})}
}

// Admit fingerprints the candidate and records it. The second return is
// true when the fingerprint was not seen before; false means the candidate
// is a repeat and must be rejected.
func (s *Set) Admit(text string) (string, bool) {
	fp := Fingerprint(text, s.n)
	if _, dup := s.seen[fp]; dup {
		return fp, false
	}
	s.seen[fp] = struct{}{}
	return fp, true
}

// Len returns the number of distinct fingerprints admitted so far.
func (s *Set) Len() int {
	return len(s.seen)
}
