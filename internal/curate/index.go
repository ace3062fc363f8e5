// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package curate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// articleFilePattern matches persisted article file names and captures the
// source stem they came from.
var articleFilePattern = regexp.MustCompile(`^(.+)_art_\d+\.md$`)

// ProcessedIndex records which source stems already have persisted
// articles. It is rebuilt from the articles tree on every run, so deleting
// output files is enough to force re-collection.
type ProcessedIndex struct {
	stems map[string]struct{}
}

// LoadIndex scans the articles directory for previously written article
// files. A missing directory yields an empty index.
func LoadIndex(articlesDir string) (*ProcessedIndex, error) {
	ix := &ProcessedIndex{stems: make(map[string]struct{})}

	err := filepath.WalkDir(articlesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if m := articleFilePattern.FindStringSubmatch(d.Name()); m != nil {
			ix.stems[m[1]] = struct{}{}
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return ix, nil
		}
		return nil, fmt.Errorf("scanning articles directory: %w", err)
	}
	return ix, nil
}

// Has reports whether a source stem already has persisted articles.
func (ix *ProcessedIndex) Has(stem string) bool {
	_, ok := ix.stems[stem]
	return ok
}

// Add marks a source stem as processed for the remainder of the run.
func (ix *ProcessedIndex) Add(stem string) {
	ix.stems[stem] = struct{}{}
}

// Len returns the number of processed stems.
func (ix *ProcessedIndex) Len() int {
	return len(ix.stems)
}
