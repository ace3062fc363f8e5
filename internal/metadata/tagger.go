// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	prose "github.com/jdkato/prose/v2"
)

// TaggedWord is one token with its Penn Treebank part-of-speech tag.
type TaggedWord struct {
	Text string
	Tag  string
}

// Tagger assigns part-of-speech tags to a span of text. The production
// implementation wraps the prose tagger; tests supply fakes.
type Tagger interface {
	Tag(text string) ([]TaggedWord, error)
}

type proseTagger struct{}

// NewTagger returns the default prose-backed Tagger.
func NewTagger() Tagger {
	return proseTagger{}
}

func (proseTagger) Tag(text string) ([]TaggedWord, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	tokens := doc.Tokens()
	tagged := make([]TaggedWord, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, TaggedWord{Text: tok.Text, Tag: tok.Tag})
	}
	return tagged, nil
}

// nounOrAdjective reports whether a Penn Treebank tag marks a noun (NN,
// NNS, NNP, NNPS) or adjective (JJ, JJR, JJS).
func nounOrAdjective(tag string) bool {
	return len(tag) >= 2 && (tag[:2] == "NN" || tag[:2] == "JJ")
}
