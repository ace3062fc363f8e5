// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mweiqi/magazine-collector/pkg/types"
)

// fakeTagger tags every token with a fixed tag, or fails.
type fakeTagger struct {
	tag string
	err error
}

func (f fakeTagger) Tag(text string) ([]TaggedWord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []TaggedWord{{Text: text, Tag: f.tag}}, nil
}

func newExtractor(t *testing.T, tagger Tagger) *Extractor {
	t.Helper()
	e, err := NewExtractor(types.DefaultMetadataConfig(), tagger)
	require.NoError(t, err)
	return e
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words, rate, want int
	}{
		{460, 230, 2},
		{50, 230, 1},
		{0, 230, 1},
		{230, 230, 1},
		{690, 230, 3},
	}
	for _, tt := range tests {
		if got := ReadingTime(tt.words, tt.rate); got != tt.want {
			t.Errorf("ReadingTime(%d, %d) = %d, want %d", tt.words, tt.rate, got, tt.want)
		}
	}
}

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "two-word byline",
			text: "A Long Read\n\nBy John Smith\n\nThe article begins here.",
			want: "John Smith",
		},
		{
			name: "four-word byline",
			text: "By Anna Maria Von Trapp\n\nBody follows.",
			want: "Anna Maria Von Trapp",
		},
		{
			name: "no byline",
			text: "An article with no visible author attribution at all.",
			want: AuthorUnknown,
		},
		{
			name: "lowercase by is not a byline",
			text: "standing by john smith at the station.",
			want: AuthorUnknown,
		},
		{
			name: "byline outside the window is ignored",
			text: strings.Repeat("padding words here. ", 40) + "By Jane Doe",
			want: AuthorUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractAuthor(tt.text, 600); got != tt.want {
				t.Errorf("ExtractAuthor = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeywordTitle(t *testing.T) {
	e := newExtractor(t, fakeTagger{tag: "NN"})

	candidate := "Solar panels power the village grid. Solar panels replaced diesel " +
		"generators. Solar panels cut village costs sharply."
	siblings := []string{
		candidate,
		"Parliament debated the budget through the night without resolution.",
		"A museum retrospective gathers four decades of port photography.",
	}

	meta := e.Extract(candidate, siblings)
	assert.NotEmpty(t, meta.Title)
	assert.Contains(t, meta.Title, "Solar")
	assert.NotEqual(t, UntitledArticle, meta.Title)
	// A keyword title, not the sentence fallback.
	assert.False(t, strings.HasSuffix(meta.Title, "."))
}

func TestTitleFallsBackToFirstSentenceOnTaggerError(t *testing.T) {
	e := newExtractor(t, fakeTagger{err: errors.New("tagger unavailable")})

	candidate := "The first sentence is right here. The second one follows along later."
	meta := e.Extract(candidate, []string{candidate})
	assert.Equal(t, "The first sentence is right here.", meta.Title)
}

func TestTitleFallsBackWhenTooFewKeywordsSurvive(t *testing.T) {
	// A verbs-only tagger leaves zero noun/adjective survivors.
	e := newExtractor(t, fakeTagger{tag: "VB"})

	candidate := "Harvest trucks crossed the border overnight. Inspectors waved most through."
	meta := e.Extract(candidate, []string{candidate})
	assert.Equal(t, "Harvest trucks crossed the border overnight.", meta.Title)
}

func TestTitleLastResort(t *testing.T) {
	e := newExtractor(t, fakeTagger{tag: "NN"})

	meta := e.Extract("", nil)
	assert.Equal(t, UntitledArticle, meta.Title)
	assert.Equal(t, 0, meta.WordCount)
	assert.Equal(t, 1, meta.ReadingTime)
	assert.Equal(t, AuthorUnknown, meta.Author)
}

func TestExtractWordCount(t *testing.T) {
	e := newExtractor(t, fakeTagger{tag: "NN"})

	candidate := strings.TrimSpace(strings.Repeat("counting words in the body text now. ", 10))
	meta := e.Extract(candidate, nil)
	assert.Equal(t, 70, meta.WordCount)
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("solar panel village grid"); got != "Solar Panel Village Grid" {
		t.Errorf("titleCase = %q", got)
	}
	if got := titleCase("covid-19 response"); got != "Covid-19 Response" {
		t.Errorf("titleCase = %q", got)
	}
}
