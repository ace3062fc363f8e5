// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits one normalized document into validated candidate
// article blocks. The primary structural boundary is a run of two or more
// blank lines; blocks then pass through a short-circuiting gate chain
// (terminal punctuation, exclusion keywords, minimum length, optional
// header length). Documents without structural boundaries fall back to
// fixed-size sentence chunking.
package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/mweiqi/magazine-collector/pkg/types"
)

// boundary matches a run of two or more blank lines, tolerating stray
// spaces and tabs on the blank lines.
var boundary = regexp.MustCompile(`(?:\n[ \t]*){3,}`)

// exclusionKeywords is the fixed non-article lexicon. A block matching more
// than the configured allowance of distinct keywords is front-matter,
// listings or boilerplate rather than an article.
var exclusionKeywords = []string{
	"contents",
	"index",
	"editor",
	"letter",
	"subscription",
	"classifieds",
	"masthead",
	"copyright",
	"advertisement",
	"the world this week",
	"back issues",
	"contributors",
	"about the author",
}

var exclusionPatterns = compileExclusions(exclusionKeywords)

func compileExclusions(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return patterns
}

// terminalRunes are the sentence-terminal characters a complete article
// block may end with.
const terminalRunes = `.?!”’"`

// Segmenter produces validated candidate article texts from one normalized
// document. It is deterministic: the same input and configuration always
// yield the same candidate list.
type Segmenter struct {
	cfg       types.SegmentConfig
	tokenizer *sentences.DefaultSentenceTokenizer
}

// New builds a Segmenter with the given thresholds.
func New(cfg types.SegmentConfig) (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence tokenizer: %w", err)
	}
	return &Segmenter{cfg: cfg, tokenizer: tokenizer}, nil
}

// Segment returns the ordered list of validated candidate blocks for one
// document. The list may be empty. When the boundary split validates
// nothing and the document itself is long enough, Segment falls back to
// sentence chunking with the punctuation and exclusion gates skipped,
// since no structural boundary exists to validate against.
func (s *Segmenter) Segment(text string) []string {
	var candidates []string
	for _, block := range boundary.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if !s.validate(block) {
			continue
		}
		candidates = append(candidates, block)
	}

	if len(candidates) == 0 && WordCount(text) > s.cfg.FallbackMinWords {
		candidates = s.chunkBySentences(text)
	}
	return candidates
}

// validate runs the gate chain, short-circuiting on the first failure.
func (s *Segmenter) validate(block string) bool {
	if !EndsWithTerminal(block) {
		return false
	}
	if ExclusionHits(block, s.cfg.ExclusionWindow) > s.cfg.ExclusionAllowance {
		return false
	}
	if WordCount(block) < s.cfg.MinWords {
		return false
	}
	if s.cfg.HeaderGate && !HeaderWithin(block, s.cfg.HeaderMinLen, s.cfg.HeaderMaxLen) {
		return false
	}
	return true
}

// EndsWithTerminal reports whether the block ends in a sentence-terminal
// character. Truncated fragments and run-on boilerplate fail this gate.
func EndsWithTerminal(block string) bool {
	trimmed := strings.TrimRight(block, " \t\n")
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	return strings.ContainsRune(terminalRunes, runes[len(runes)-1])
}

// ExclusionHits counts the distinct non-article keywords appearing within
// the first window characters of the block (the whole block when window is
// zero). Matches are whole-word and case-insensitive.
func ExclusionHits(block string, window int) int {
	lowered := strings.ToLower(block)
	if window > 0 {
		runes := []rune(lowered)
		if len(runes) > window {
			lowered = string(runes[:window])
		}
	}
	hits := 0
	for _, p := range exclusionPatterns {
		if p.MatchString(lowered) {
			hits++
		}
	}
	return hits
}

// HeaderWithin reports whether the block's first line length falls inside
// [minLen, maxLen].
func HeaderWithin(block string, minLen, maxLen int) bool {
	firstLine := block
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		firstLine = block[:i]
	}
	n := len([]rune(strings.TrimSpace(firstLine)))
	return n >= minLen && n <= maxLen
}

// WordCount returns the number of whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// chunkBySentences emits successive chunks of ChunkSentences sentences.
// Chunks still have to meet the fallback minimum word count, so trailing
// fragments are not promoted to articles.
func (s *Segmenter) chunkBySentences(text string) []string {
	sents := s.tokenizer.Tokenize(text)
	if len(sents) == 0 {
		return nil
	}

	size := s.cfg.ChunkSentences
	if size <= 0 {
		size = 30
	}

	var chunks []string
	for start := 0; start < len(sents); start += size {
		end := start + size
		if end > len(sents) {
			end = len(sents)
		}
		var b strings.Builder
		for _, sent := range sents[start:end] {
			b.WriteString(sent.Text)
		}
		chunk := strings.TrimSpace(b.String())
		if WordCount(chunk) >= s.cfg.FallbackMinWords {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
