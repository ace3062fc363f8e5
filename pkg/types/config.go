// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SegmentConfig holds thresholds for the article segmenter. All values are
// fixed at construction; the segmenter never consults process-wide state.
type SegmentConfig struct {
	// MinWords is the minimum word count for a boundary-split candidate.
	MinWords int `json:"min_words" yaml:"min_words"`

	// ExclusionWindow is how many leading characters the exclusion-keyword
	// gate scans. Zero scans the whole block.
	ExclusionWindow int `json:"exclusion_window" yaml:"exclusion_window"`

	// ExclusionAllowance is the number of distinct non-article keywords a
	// block may contain before it is rejected.
	ExclusionAllowance int `json:"exclusion_allowance" yaml:"exclusion_allowance"`

	// HeaderGate enables the first-line length check. Off by default:
	// single-paragraph blocks have no meaningful header line.
	HeaderGate bool `json:"header_gate" yaml:"header_gate"`

	// HeaderMinLen and HeaderMaxLen bound the first-line length when
	// HeaderGate is on.
	HeaderMinLen int `json:"header_min_len" yaml:"header_min_len"`
	HeaderMaxLen int `json:"header_max_len" yaml:"header_max_len"`

	// FallbackMinWords is the minimum document length for the sentence-chunk
	// fallback, and the minimum length of each emitted chunk.
	FallbackMinWords int `json:"fallback_min_words" yaml:"fallback_min_words"`

	// ChunkSentences is the number of sentences per fallback chunk.
	ChunkSentences int `json:"chunk_sentences" yaml:"chunk_sentences"`
}

// DefaultSegmentConfig returns the segmenter thresholds used when the
// config file does not override them.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		MinWords:           250,
		ExclusionWindow:    500,
		ExclusionAllowance: 1,
		HeaderGate:         false,
		HeaderMinLen:       10,
		HeaderMaxLen:       150,
		FallbackMinWords:   200,
		ChunkSentences:     30,
	}
}

// DedupConfig holds settings for fingerprint deduplication.
type DedupConfig struct {
	// FingerprintLen is the number of leading characters used as the
	// near-duplicate key. Two articles sharing a prefix this long are
	// treated as the same content.
	FingerprintLen int `json:"fingerprint_len" yaml:"fingerprint_len"`
}

// DefaultDedupConfig returns the default fingerprint settings.
func DefaultDedupConfig() DedupConfig {
	return DedupConfig{FingerprintLen: 60}
}

// MetadataConfig holds settings for title, author and reading-time
// derivation.
type MetadataConfig struct {
	// ReadingRate is the assumed reading speed in words per minute.
	ReadingRate int `json:"reading_rate" yaml:"reading_rate"`

	// TopTerms is how many TF-IDF terms are scored before POS filtering.
	TopTerms int `json:"top_terms" yaml:"top_terms"`

	// TitleTerms is how many surviving terms are joined into the title.
	TitleTerms int `json:"title_terms" yaml:"title_terms"`

	// AuthorWindow is how many leading characters the byline regex scans.
	AuthorWindow int `json:"author_window" yaml:"author_window"`
}

// DefaultMetadataConfig returns the default metadata settings.
func DefaultMetadataConfig() MetadataConfig {
	return MetadataConfig{
		ReadingRate:  230,
		TopTerms:     8,
		TitleTerms:   4,
		AuthorWindow: 600,
	}
}

// ClassifyConfig holds settings for topic classification.
type ClassifyConfig struct {
	// MinScore is the confidence floor: a topic must accumulate at least
	// this many whole-word keyword hits to be assigned.
	MinScore int `json:"min_score" yaml:"min_score"`
}

// DefaultClassifyConfig returns the default classification settings.
func DefaultClassifyConfig() ClassifyConfig {
	return ClassifyConfig{MinScore: 4}
}

// GroupBy values for CollectConfig.
const (
	GroupByJournal = "journal"
	GroupByTopic   = "topic"
)

// CollectConfig holds settings for the curation run.
type CollectConfig struct {
	// SourceDir is the root directory holding one subdirectory per
	// publication, each containing issue files (.epub or .txt).
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// ArticlesDir is the root of the curated Markdown tree.
	ArticlesDir string `json:"articles_dir" yaml:"articles_dir"`

	// GroupBy selects the output subdirectory per article: "journal"
	// (the publication folder, default) or "topic" (the classifier label).
	GroupBy string `json:"group_by" yaml:"group_by"`

	// Publications maps a source folder name to its display name
	// (e.g. "01_economist" -> "The Economist"). Folders without an entry
	// use the folder name itself.
	Publications map[string]string `json:"publications" yaml:"publications"`

	Segment  SegmentConfig  `json:"segment" yaml:"segment"`
	Dedup    DedupConfig    `json:"dedup" yaml:"dedup"`
	Metadata MetadataConfig `json:"metadata" yaml:"metadata"`
	Classify ClassifyConfig `json:"classify" yaml:"classify"`
}

// DefaultCollectConfig returns a CollectConfig with every stage at its
// default thresholds.
func DefaultCollectConfig() CollectConfig {
	return CollectConfig{
		SourceDir:   "sources",
		ArticlesDir: "articles",
		GroupBy:     GroupByJournal,
		Segment:     DefaultSegmentConfig(),
		Dedup:       DefaultDedupConfig(),
		Metadata:    DefaultMetadataConfig(),
		Classify:    DefaultClassifyConfig(),
	}
}

// CatalogConfig holds settings for the article catalog.
type CatalogConfig struct {
	// CatalogDir is the base directory for the catalog (contains index/).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of query results.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// DefaultCatalogConfig returns the default catalog settings.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{CatalogDir: "catalog", MaxResults: 20}
}
