// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns exactly one topic label to a candidate article
// using keyword-count scoring over a fixed, ordered lexicon. Ordering is
// part of the contract: ties resolve to the topic declared first, never to
// incidental map iteration order.
package classify

import (
	"regexp"
	"strings"

	"github.com/mweiqi/magazine-collector/pkg/types"
)

// FallbackLabel is assigned when no topic reaches the confidence floor.
const FallbackLabel = "General"

// Topic pairs a label with its keyword list.
type Topic struct {
	Name     string
	Keywords []string
}

// DefaultTopics returns the built-in lexicon in tie-break order.
func DefaultTopics() []Topic {
	return []Topic{
		{
			Name: "technology",
			Keywords: []string{
				"ai", "software", "internet", "computer", "data", "digital",
				"tech", "startup", "robot", "algorithm", "silicon", "chip",
				"cyber", "app", "online",
			},
		},
		{
			Name: "business",
			Keywords: []string{
				"market", "economy", "economic", "bank", "investment",
				"finance", "financial", "trade", "company", "stock", "shares",
				"profit", "inflation", "growth", "revenue",
			},
		},
		{
			Name: "science",
			Keywords: []string{
				"research", "study", "scientist", "climate", "energy",
				"space", "physics", "biology", "gene", "vaccine", "medicine",
				"experiment", "laboratory", "species",
			},
		},
		{
			Name: "world_affairs",
			Keywords: []string{
				"government", "election", "president", "minister", "policy",
				"war", "military", "diplomatic", "treaty", "parliament",
				"congress", "sanctions", "refugee", "border",
			},
		},
		{
			Name: "culture",
			Keywords: []string{
				"art", "music", "film", "book", "novel", "theatre", "museum",
				"artist", "author", "literature", "festival", "painting",
				"opera", "poetry",
			},
		},
	}
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+(?:['’][a-z]+)?`)

// Classifier scores candidates against an immutable ordered topic list.
type Classifier struct {
	topics   []Topic
	minScore int
}

// New builds a Classifier. A nil topic list uses DefaultTopics. The topic
// slice is not copied; callers must not mutate it afterwards.
func New(topics []Topic, cfg types.ClassifyConfig) *Classifier {
	if topics == nil {
		topics = DefaultTopics()
	}
	minScore := cfg.MinScore
	if minScore <= 0 {
		minScore = types.DefaultClassifyConfig().MinScore
	}
	return &Classifier{topics: topics, minScore: minScore}
}

// Classify returns the label of the highest-scoring topic, or
// FallbackLabel when the best score is below the confidence floor.
// score(topic) is the total count of whole-word keyword occurrences in the
// lowercased text. Ties go to the topic declared first: a later topic must
// score strictly higher to win. Classification never fails.
func (c *Classifier) Classify(text string) string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}
	joined := strings.Join(words, " ")

	best := FallbackLabel
	bestScore := 0
	for _, topic := range c.topics {
		score := 0
		for _, kw := range topic.Keywords {
			if strings.ContainsRune(kw, ' ') {
				score += phraseCount(joined, kw)
			} else {
				score += freq[kw]
			}
		}
		if score > bestScore {
			best = topic.Name
			bestScore = score
		}
	}

	if bestScore < c.minScore {
		return FallbackLabel
	}
	return best
}

// phraseCount counts non-overlapping occurrences of a multi-word keyword
// in the space-joined token stream. Token joining guarantees whole-word
// boundaries.
func phraseCount(joined, phrase string) int {
	count := 0
	for i := 0; ; {
		j := strings.Index(joined[i:], phrase)
		if j < 0 {
			return count
		}
		start := i + j
		end := start + len(phrase)
		startOK := start == 0 || joined[start-1] == ' '
		endOK := end == len(joined) || joined[end] == ' '
		if startOK && endOK {
			count++
		}
		i = end
	}
}
