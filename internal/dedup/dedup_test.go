// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"strings"
	"testing"

	"github.com/mweiqi/magazine-collector/pkg/types"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{
			name: "truncates to n characters",
			text: strings.Repeat("a", 100),
			n:    60,
			want: strings.Repeat("a", 60),
		},
		{
			name: "short text fingerprints whole",
			text: "short candidate",
			n:    60,
			want: "short candidate",
		},
		{
			name: "trims before truncating",
			text: "   leading space article body   ",
			n:    7,
			want: "leading",
		},
		{
			name: "counts runes not bytes",
			text: "ünïcödé text here",
			n:    7,
			want: "ünïcödé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fingerprint(tt.text, tt.n); got != tt.want {
				t.Errorf("Fingerprint = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetAdmit(t *testing.T) {
	set := NewSet(types.DefaultDedupConfig())

	first := strings.Repeat("x", 60) + " first article continues this way."
	if _, ok := set.Admit(first); !ok {
		t.Fatal("first candidate rejected")
	}
	if _, ok := set.Admit(first); ok {
		t.Error("exact repeat admitted")
	}
	if set.Len() != 1 {
		t.Errorf("Len = %d, want 1", set.Len())
	}
}

// Two distinct candidates sharing the same first 60 characters collide:
// only the first is admitted.
func TestSetPrefixCollision(t *testing.T) {
	set := NewSet(types.DefaultDedupConfig())

	shared := strings.Repeat("z", 60)
	a := shared + " then the story goes one way."
	b := shared + " but here it goes an entirely different way."

	if _, ok := set.Admit(a); !ok {
		t.Fatal("first candidate rejected")
	}
	fp, ok := set.Admit(b)
	if ok {
		t.Error("prefix-colliding candidate admitted")
	}
	if fp != shared {
		t.Errorf("fingerprint = %q, want the shared 60-char prefix", fp)
	}
}

func TestSetDistinctPrefixes(t *testing.T) {
	set := NewSet(types.DefaultDedupConfig())

	if _, ok := set.Admit("An article about shipping lanes in the northern Atlantic region today."); !ok {
		t.Fatal("first rejected")
	}
	if _, ok := set.Admit("A different piece about grain harvests across the southern plains area."); !ok {
		t.Error("distinct candidate rejected")
	}
	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}
}
