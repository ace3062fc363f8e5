// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

// maxNgram bounds the phrase length of TF-IDF terms.
const maxNgram = 3

// errEmptyVocabulary signals that the target candidate produced no terms
// at all; the caller falls back to the first-sentence title.
var errEmptyVocabulary = errors.New("tfidf: empty vocabulary")

var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9'’\-]*`)

// Term is one scored phrase from the TF-IDF model.
type Term struct {
	// Text is the surface form as it first appeared in the target.
	Text string

	// Key is the stemmed vocabulary key the term was scored under.
	Key string

	// Score is term frequency in the target times smoothed inverse
	// document frequency over the corpus.
	Score float64
}

type gram struct {
	key     string
	surface string
}

// extractGrams returns the 1..maxNgram word n-grams of a document. Grams
// are built over runs of consecutive non-stopword tokens, so no gram spans
// a stopword. Keys are snowball-stemmed to merge inflected variants.
func extractGrams(doc string) []gram {
	tokens := tokenPattern.FindAllString(strings.ToLower(doc), -1)

	var runs [][]string
	var current []string
	for _, tok := range tokens {
		if _, stop := stopwords[tok]; stop || len(tok) < 2 {
			if len(current) > 0 {
				runs = append(runs, current)
				current = nil
			}
			continue
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}

	var grams []gram
	for _, run := range runs {
		stems := make([]string, len(run))
		for i, w := range run {
			stems[i] = stemWord(w)
		}
		for i := range run {
			for n := 1; n <= maxNgram && i+n <= len(run); n++ {
				grams = append(grams, gram{
					key:     strings.Join(stems[i:i+n], " "),
					surface: strings.Join(run[i:i+n], " "),
				})
			}
		}
	}
	return grams
}

func stemWord(word string) string {
	stemmed, err := snowball.Stem(word, "english", false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}

// topTerms fits a TF-IDF model over the corpus (the sibling candidates
// from the same source, target included) and scores the target against
// it, returning the k highest-scoring terms. Equal scores break by
// ascending key order so results stay stable across runs.
func topTerms(target string, corpus []string, k int) ([]Term, error) {
	targetGrams := extractGrams(target)
	if len(targetGrams) == 0 {
		return nil, errEmptyVocabulary
	}
	if len(corpus) == 0 {
		corpus = []string{target}
	}

	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, g := range extractGrams(doc) {
			if _, ok := seen[g.key]; ok {
				continue
			}
			seen[g.key] = struct{}{}
			df[g.key]++
		}
	}

	tf := make(map[string]int, len(targetGrams))
	surface := make(map[string]string, len(targetGrams))
	for _, g := range targetGrams {
		tf[g.key]++
		if _, ok := surface[g.key]; !ok {
			surface[g.key] = g.surface
		}
	}

	n := float64(len(corpus))
	terms := make([]Term, 0, len(tf))
	for key, count := range tf {
		idf := math.Log((1+n)/float64(1+df[key])) + 1
		terms = append(terms, Term{
			Text:  surface[key],
			Key:   key,
			Score: float64(count) * idf,
		})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Score != terms[j].Score {
			return terms[i].Score > terms[j].Score
		}
		return terms[i].Key < terms[j].Key
	})

	if k > 0 && len(terms) > k {
		terms = terms[:k]
	}
	return terms, nil
}
