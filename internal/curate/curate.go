// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package curate runs the collection pipeline end to end: it walks the
// source tree one publication at a time, decodes the newest unprocessed
// issue, and pushes its text through normalization, segmentation,
// deduplication, metadata extraction and topic classification before
// persisting each surviving article as frontmatter Markdown. Runs are
// idempotent; an issue whose articles already exist on disk is skipped.
package curate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mweiqi/magazine-collector/internal/classify"
	"github.com/mweiqi/magazine-collector/internal/dedup"
	"github.com/mweiqi/magazine-collector/internal/metadata"
	"github.com/mweiqi/magazine-collector/internal/segment"
	"github.com/mweiqi/magazine-collector/internal/textnorm"
	"github.com/mweiqi/magazine-collector/pkg/types"
)

// BatchResult holds the outcome of one collection run.
type BatchResult struct {
	Collected int // articles written
	Sources   int // source files that produced articles
	Skipped   int // publications already collected
	Failed    int // source files that failed or yielded nothing
}

// Total returns the number of source files the run settled one way or
// another.
func (r BatchResult) Total() int {
	return r.Sources + r.Skipped + r.Failed
}

// HasFailures reports whether any source file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Orchestrator wires the pipeline stages together under one immutable
// configuration.
type Orchestrator struct {
	cfg        types.CollectConfig
	src        DocumentSource
	segmenter  *segment.Segmenter
	extractor  *metadata.Extractor
	classifier *classify.Classifier
	logger     zerolog.Logger
}

// New builds an Orchestrator from the collection config. A nil src uses
// the production FileSource.
func New(cfg types.CollectConfig, src DocumentSource, logger zerolog.Logger) (*Orchestrator, error) {
	if src == nil {
		src = FileSource{}
	}
	seg, err := segment.New(cfg.Segment)
	if err != nil {
		return nil, fmt.Errorf("building segmenter: %w", err)
	}
	ext, err := metadata.NewExtractor(cfg.Metadata, nil)
	if err != nil {
		return nil, fmt.Errorf("building metadata extractor: %w", err)
	}
	return &Orchestrator{
		cfg:        cfg,
		src:        src,
		segmenter:  seg,
		extractor:  ext,
		classifier: classify.New(nil, cfg.Classify),
		logger:     logger,
	}, nil
}

// Run processes every publication directory under the source tree,
// printing per-file status to w and returning a summary. A missing source
// directory is the only fatal error; everything per-file degrades to the
// next file.
func (o *Orchestrator) Run(ctx context.Context, w io.Writer) (BatchResult, error) {
	var result BatchResult

	if _, err := os.Stat(o.cfg.SourceDir); err != nil {
		return result, fmt.Errorf("source directory %s: %w", o.cfg.SourceDir, err)
	}

	pubs, err := publicationDirs(o.cfg.SourceDir)
	if err != nil {
		return result, err
	}

	index, err := LoadIndex(o.cfg.ArticlesDir)
	if err != nil {
		return result, err
	}

	for _, pub := range pubs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}
		o.collectPublication(pub, index, w, &result)
	}

	fmt.Fprintf(w, "\nBatch summary: %d articles from %d sources, %d skipped, %d failed\n",
		result.Collected, result.Sources, result.Skipped, result.Failed)
	return result, nil
}

// collectPublication settles one publication for this run: the newest
// issue wins, older issues are only tried when newer ones fail to yield
// articles, and an already-collected issue closes the publication out.
func (o *Orchestrator) collectPublication(pub string, index *ProcessedIndex, w io.Writer, result *BatchResult) {
	files, err := sourceFiles(filepath.Join(o.cfg.SourceDir, pub))
	if err != nil {
		o.logger.Warn().Err(err).Str("publication", pub).Msg("listing publication failed")
		fmt.Fprintf(w, "failed:  %s (%v)\n", pub, err)
		result.Failed++
		return
	}

	for _, file := range files {
		stem := Stem(file)

		if index.Has(stem) {
			fmt.Fprintf(w, "skipped: %s (already collected)\n", stem)
			result.Skipped++
			return
		}

		candidates, err := o.candidates(file)
		if err != nil {
			o.logger.Warn().Err(err).Str("file", file).Msg("decoding source failed")
			fmt.Fprintf(w, "failed:  %s (%v)\n", stem, err)
			result.Failed++
			continue
		}
		if len(candidates) == 0 {
			o.logger.Debug().Str("file", file).Msg("no article candidates")
			fmt.Fprintf(w, "empty:   %s (no article candidates)\n", stem)
			result.Failed++
			continue
		}

		written, duplicates := o.persistArticles(pub, stem, candidates, w)
		if written == 0 {
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "collected: %s (%d articles, %d duplicates)\n", stem, written, duplicates)
		result.Collected += written
		result.Sources++
		index.Add(stem)
		return
	}
}

// candidates decodes one source file and returns its validated article
// candidates across all internal documents.
func (o *Orchestrator) candidates(file string) ([]string, error) {
	docs, err := o.src.Documents(file)
	if err != nil {
		return nil, err
	}
	var candidates []string
	for _, doc := range docs {
		normalized := textnorm.Normalize(doc.Text)
		candidates = append(candidates, o.segmenter.Segment(normalized)...)
	}
	return candidates, nil
}

// persistArticles deduplicates, enriches and writes the candidates of one
// source file. The full candidate list serves as the TF-IDF corpus for
// every sibling.
func (o *Orchestrator) persistArticles(pub, stem string, candidates []string, w io.Writer) (written, duplicates int) {
	seen := dedup.NewSet(o.cfg.Dedup)
	journal := o.journalName(pub)

	for _, candidate := range candidates {
		fingerprint, fresh := seen.Admit(candidate)
		if !fresh {
			duplicates++
			continue
		}

		meta := o.extractor.Extract(candidate, candidates)
		rec := types.ArticleRecord{
			Fingerprint: fingerprint,
			Title:       meta.Title,
			Author:      meta.Author,
			Journal:     journal,
			Topic:       o.classifier.Classify(candidate),
			SourceStem:  stem,
			WordCount:   meta.WordCount,
			ReadingTime: meta.ReadingTime,
			Body:        candidate,
		}

		path, err := writeArticle(o.cfg.ArticlesDir, o.groupDir(pub, rec), rec, written+1)
		if err != nil {
			o.logger.Warn().Err(err).Str("stem", stem).Msg("persisting article failed")
			fmt.Fprintf(w, "failed:  %s (%v)\n", stem, err)
			continue
		}
		o.logger.Debug().Str("path", path).Str("title", rec.Title).Msg("article written")
		written++
	}
	return written, duplicates
}

// journalName maps a publication directory to its display name, falling
// back to the directory name itself.
func (o *Orchestrator) journalName(pub string) string {
	if name, ok := o.cfg.Publications[pub]; ok && name != "" {
		return name
	}
	return pub
}

// groupDir picks the output subdirectory for a record.
func (o *Orchestrator) groupDir(pub string, rec types.ArticleRecord) string {
	if o.cfg.GroupBy == types.GroupByTopic {
		return rec.Topic
	}
	return pub
}

// publicationDirs lists the source tree's publication directories in
// sorted order.
func publicationDirs(sourceDir string) ([]string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", sourceDir, err)
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
