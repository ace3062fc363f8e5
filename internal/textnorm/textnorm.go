// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm cleans raw extracted prose before segmentation: it
// strips URLs, email addresses and subscription boilerplate, trims
// per-line whitespace, and canonicalizes blank-line runs so that article
// boundaries survive normalization.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	urlPattern   = regexp.MustCompile(`(?i)\bhttps?://[^\s]+|\bwww\.[^\s]+`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Promotional phrases that leak out of magazine markup.
	boilerplatePattern = regexp.MustCompile(
		`(?i)subscribe now|subscribe today|visit our website|sign up for our newsletter|download our app|follow us on`)

	blankLineSpace = regexp.MustCompile(`(?m)^[ \t]+$`)
	trailingSpace  = regexp.MustCompile(`[ \t]+\n`)

	// Three or more consecutive newlines, i.e. two or more blank lines.
	// Collapsed to exactly two blank lines: one canonical article boundary.
	// Collapsing further would erase the only structural boundary the
	// segmenter splits on.
	boundaryRun = regexp.MustCompile(`\n{3,}`)
)

// Normalize returns a cleaned copy of raw extracted text. It is a pure
// function: the same input always yields the same output, and unexpected
// input (empty or whitespace-only text) comes back unchanged apart from
// trimming.
func Normalize(text string) string {
	if text == "" {
		return text
	}

	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = urlPattern.ReplaceAllString(s, "")
	s = emailPattern.ReplaceAllString(s, "")
	s = boilerplatePattern.ReplaceAllString(s, "")

	s = blankLineSpace.ReplaceAllString(s, "")
	s = trailingSpace.ReplaceAllString(s, "\n")
	s = boundaryRun.ReplaceAllString(s, "\n\n\n")

	return strings.TrimSpace(s)
}
