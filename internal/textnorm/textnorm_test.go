// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input unchanged",
			in:   "",
			want: "",
		},
		{
			name: "strips urls",
			in:   "Read more at https://example.com/article?id=1 today.",
			want: "Read more at  today.",
		},
		{
			name: "strips www urls",
			in:   "See www.example.org for details.",
			want: "See  for details.",
		},
		{
			name: "strips emails",
			in:   "Contact editor@example.com with tips.",
			want: "Contact  with tips.",
		},
		{
			name: "strips boilerplate phrases",
			in:   "The story continues. Subscribe now for full access.",
			want: "The story continues.  for full access.",
		},
		{
			name: "collapses long blank runs to one boundary",
			in:   "first block.\n\n\n\n\n\nsecond block.",
			want: "first block.\n\n\nsecond block.",
		},
		{
			name: "keeps single blank lines",
			in:   "paragraph one.\n\nparagraph two.",
			want: "paragraph one.\n\nparagraph two.",
		},
		{
			name: "trims whitespace-only lines inside runs",
			in:   "a.\n  \n\t\n   \nb.",
			want: "a.\n\n\nb.",
		},
		{
			name: "normalizes CRLF",
			in:   "line one.\r\nline two.\r\n",
			want: "line one.\nline two.",
		},
		{
			name: "trims leading and trailing whitespace",
			in:   "\n\n  body text.  \n\n",
			want: "body text.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsPure(t *testing.T) {
	in := "Some text.\n\n\n\nMore text. https://example.com\n"
	first := Normalize(in)
	second := Normalize(in)
	if first != second {
		t.Errorf("Normalize not deterministic: %q vs %q", first, second)
	}
}

func TestNormalizePreservesBoundaryForSegmentation(t *testing.T) {
	in := "article one body.\n\n\n\n\n\n\n\narticle two body."
	got := Normalize(in)
	if strings.Count(got, "\n\n\n") != 1 {
		t.Errorf("expected exactly one canonical boundary in %q", got)
	}
}
