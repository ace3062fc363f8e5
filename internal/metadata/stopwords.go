// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

// stopwordList is the English stop-list used by the TF-IDF vocabulary,
// extended with generic reporting words that dominate magazine prose but
// carry no title value.
var stopwordList = []string{
	// Core English stopwords.
	"a", "an", "and", "are", "as", "at", "be", "been", "being", "by",
	"for", "from", "had", "has", "have", "having", "he", "her", "hers",
	"him", "his", "i", "if", "in", "into", "is", "it", "its", "itself",
	"me", "my", "no", "nor", "not", "of", "on", "or", "our", "ours",
	"she", "so", "than", "that", "the", "their", "theirs", "them",
	"then", "there", "these", "they", "this", "those", "to", "too",
	"us", "was", "we", "were", "what", "when", "where", "which",
	"while", "who", "whom", "whose", "why", "will", "with", "would",
	"you", "your", "yours",
	// Auxiliaries and connectives.
	"am", "but", "can", "cannot", "could", "did", "do", "does", "doing",
	"down", "during", "each", "few", "further", "here", "how", "more",
	"most", "must", "only", "other", "out", "over", "own", "same",
	"shall", "should", "some", "such", "under", "until", "up", "very",
	"may", "might", "because", "since", "although", "though", "unless",
	"yet", "however", "therefore", "thus", "hence", "about", "above",
	"after", "again", "against", "all", "any", "before", "below",
	"between", "both", "off", "once", "through",
	// Generic reporting words.
	"said", "says", "say", "saying", "also", "mr", "mrs", "ms", "sir",
	"according", "told", "asked", "added", "called", "among", "per",
	"via", "just", "even", "still", "much", "many", "one", "two",
	"new", "like", "well", "now", "get", "got", "made", "make", "makes",
	"take", "took", "way", "year", "years", "last", "first", "people",
}

var stopwords = buildStopwords(stopwordList)

func buildStopwords(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
