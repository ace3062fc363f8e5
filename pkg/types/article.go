// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RawDocument is one decoded text unit from a source file: a single EPUB
// internal document, or a whole-file text blob. It exists only between
// extraction and segmentation.
type RawDocument struct {
	// SourceFile is the path of the file the document was decoded from.
	SourceFile string `json:"source_file" yaml:"source_file"`

	// DocumentIndex is the document's position within the source file.
	DocumentIndex int `json:"document_index" yaml:"document_index"`

	// Text is the markup-free prose extracted from the document.
	Text string `json:"text" yaml:"text"`
}

// ArticleRecord is the durable unit of output: one curated article with its
// derived metadata. Records are immutable once created; a re-run either
// skips the source via the processed index or produces new records.
type ArticleRecord struct {
	// Fingerprint is the prefix-based duplicate-detection key. Unique
	// within the batch that produced the record.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`

	// Title is the derived article title, never empty.
	Title string `json:"title" yaml:"title"`

	// Author is the extracted byline, or the "N/A" sentinel.
	Author string `json:"author" yaml:"author"`

	// Journal is the publication display name (e.g. "The Economist").
	Journal string `json:"journal" yaml:"journal"`

	// Topic is the classifier's label, or "General" when no topic
	// scored above the confidence floor.
	Topic string `json:"topic" yaml:"topic"`

	// SourceStem is the source file name without its extension.
	SourceStem string `json:"source_stem" yaml:"source_stem"`

	// WordCount is the number of whitespace-delimited tokens in the body.
	WordCount int `json:"word_count" yaml:"word_count"`

	// ReadingTime is the estimated reading time in minutes, at least 1.
	ReadingTime int `json:"reading_time" yaml:"reading_time"`

	// Body is the full article text.
	Body string `json:"body" yaml:"body"`
}
