// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata derives the title, author, word count and reading time
// for one validated, deduplicated article candidate. Title generation is a
// chain of explicit strategies tried in order: TF-IDF keywords filtered by
// part-of-speech, then the first sentence, then a fixed placeholder. Every
// failure degrades to the next strategy; nothing propagates to the caller.
package metadata

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/mweiqi/magazine-collector/pkg/types"
)

// AuthorUnknown is the sentinel byline when no author pattern matches.
const AuthorUnknown = "N/A"

// UntitledArticle is the last-resort title.
const UntitledArticle = "Untitled Article"

// minTitleKeywords is the number of POS-surviving keywords required before
// a keyword title is used instead of the first-sentence fallback.
const minTitleKeywords = 3

var bylinePattern = regexp.MustCompile(
	`\bBy\s+([A-Z][A-Za-z'’\-]+(?:\s+[A-Z][A-Za-z'’\-]+){1,3})`)

// Meta holds the derived fields for one candidate.
type Meta struct {
	Title       string
	Author      string
	WordCount   int
	ReadingTime int
}

// Extractor derives metadata using an immutable configuration and a
// pluggable part-of-speech tagger.
type Extractor struct {
	cfg       types.MetadataConfig
	tagger    Tagger
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewExtractor builds an Extractor. A nil tagger uses the prose-backed
// default.
func NewExtractor(cfg types.MetadataConfig, tagger Tagger) (*Extractor, error) {
	if tagger == nil {
		tagger = NewTagger()
	}
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence tokenizer: %w", err)
	}
	return &Extractor{cfg: cfg, tagger: tagger, tokenizer: tokenizer}, nil
}

// Extract derives all metadata for a candidate. siblings is the full list
// of candidates from the same source, used as the TF-IDF corpus; an empty
// list degrades to a corpus of just the candidate itself. Extract has no
// failure mode: every internal error falls through to a weaker strategy.
func (e *Extractor) Extract(candidate string, siblings []string) Meta {
	words := len(strings.Fields(candidate))
	return Meta{
		Title:       e.deriveTitle(candidate, siblings),
		Author:      ExtractAuthor(candidate, e.cfg.AuthorWindow),
		WordCount:   words,
		ReadingTime: ReadingTime(words, e.cfg.ReadingRate),
	}
}

// deriveTitle tries each title strategy in order.
func (e *Extractor) deriveTitle(candidate string, siblings []string) string {
	if title, ok := e.keywordTitle(candidate, siblings); ok {
		return title
	}
	if title, ok := e.firstSentenceTitle(candidate); ok {
		return title
	}
	return UntitledArticle
}

// keywordTitle scores the candidate against its siblings with TF-IDF,
// keeps the terms whose head token tags as a noun or adjective, and joins
// the top survivors. It reports failure when the model cannot be fitted,
// tagging errors out, or fewer than minTitleKeywords terms survive.
func (e *Extractor) keywordTitle(candidate string, siblings []string) (string, bool) {
	corpus := siblings
	if len(corpus) == 0 {
		corpus = []string{candidate}
	}

	terms, err := topTerms(candidate, corpus, e.cfg.TopTerms)
	if err != nil {
		return "", false
	}

	var kept []string
	for _, term := range terms {
		head := strings.Fields(term.Text)
		if len(head) == 0 {
			continue
		}
		tagged, err := e.tagger.Tag(head[0])
		if err != nil {
			return "", false
		}
		if len(tagged) == 0 {
			continue
		}
		if nounOrAdjective(tagged[0].Tag) {
			kept = append(kept, term.Text)
		}
	}

	if len(kept) < minTitleKeywords {
		return "", false
	}

	limit := e.cfg.TitleTerms
	if limit <= 0 {
		limit = types.DefaultMetadataConfig().TitleTerms
	}
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return titleCase(strings.Join(kept, " ")), true
}

// firstSentenceTitle returns the candidate's first sentence.
func (e *Extractor) firstSentenceTitle(candidate string) (string, bool) {
	for _, sent := range e.tokenizer.Tokenize(candidate) {
		if text := strings.TrimSpace(sent.Text); text != "" {
			return text, true
		}
	}
	return "", false
}

// ExtractAuthor searches the first window characters for a
// "By Firstname Lastname" byline, returning AuthorUnknown when absent.
func ExtractAuthor(text string, window int) string {
	runes := []rune(text)
	if window > 0 && len(runes) > window {
		text = string(runes[:window])
	}
	match := bylinePattern.FindStringSubmatch(text)
	if match == nil {
		return AuthorUnknown
	}
	return match[1]
}

// ReadingTime estimates reading minutes for a word count at the given
// words-per-minute rate, flooring at one minute.
func ReadingTime(words, rate int) int {
	if rate <= 0 {
		rate = types.DefaultMetadataConfig().ReadingRate
	}
	minutes := int(math.Round(float64(words) / float64(rate)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// titleCase upper-cases the first letter of each word, leaving the rest of
// the word untouched.
func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		runes := []rune(f)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
