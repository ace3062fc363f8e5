// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"errors"
	"testing"
)

func TestTopTermsEmptyVocabulary(t *testing.T) {
	_, err := topTerms("the of and is a", []string{"some corpus document"}, 8)
	if !errors.Is(err, errEmptyVocabulary) {
		t.Fatalf("err = %v, want errEmptyVocabulary", err)
	}
}

func TestTopTermsTieBreakByKey(t *testing.T) {
	// Both terms appear once with identical document frequency, so the tie
	// breaks by ascending key order.
	terms, err := topTerms("zebra apple", nil, 2)
	if err != nil {
		t.Fatalf("topTerms: %v", err)
	}
	if len(terms) < 2 {
		t.Fatalf("got %d terms, want at least 2", len(terms))
	}
	if terms[0].Key >= terms[1].Key {
		t.Errorf("tie not broken by ascending key: %q before %q", terms[0].Key, terms[1].Key)
	}
}

func TestTopTermsStemMerging(t *testing.T) {
	// "economies" and "economy" share the stem "economi" and must score as
	// one term, displayed under the first-seen surface form.
	terms, err := topTerms("economies economy recover", nil, 8)
	if err != nil {
		t.Fatalf("topTerms: %v", err)
	}
	if terms[0].Key != "economi" {
		t.Fatalf("top key = %q, want \"economi\"", terms[0].Key)
	}
	if terms[0].Text != "economies" {
		t.Errorf("surface form = %q, want first-seen \"economies\"", terms[0].Text)
	}
}

func TestTopTermsDistinctiveTermWinsOverCommonOne(t *testing.T) {
	target := "glacier melt accelerates. glacier melt threatens ports. shipping routes shift."
	corpus := []string{
		target,
		"shipping firms report record profits. shipping capacity expands.",
		"shipping delays continue across ports. schedules slip.",
	}

	terms, err := topTerms(target, corpus, 8)
	if err != nil {
		t.Fatalf("topTerms: %v", err)
	}

	rank := func(key string) int {
		for i, term := range terms {
			if term.Key == key {
				return i
			}
		}
		return -1
	}

	glacier, shipping := rank("glacier"), rank(stemWord("shipping"))
	if glacier < 0 {
		t.Fatal("\"glacier\" missing from top terms")
	}
	if shipping >= 0 && glacier > shipping {
		t.Errorf("corpus-wide term ranked above document-distinctive term")
	}
}

func TestTopTermsLimitsResultCount(t *testing.T) {
	terms, err := topTerms("alpha bravo charlie delta echo foxtrot golf hotel india juliet", nil, 3)
	if err != nil {
		t.Fatalf("topTerms: %v", err)
	}
	if len(terms) != 3 {
		t.Errorf("got %d terms, want 3", len(terms))
	}
}

func TestExtractGramsSkipsStopwordSpans(t *testing.T) {
	grams := extractGrams("trade war and supply chains")
	for _, g := range grams {
		if g.key == "trade war suppli" || g.surface == "war and supply" {
			t.Errorf("gram %q spans a stopword", g.surface)
		}
	}
}
