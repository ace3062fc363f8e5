// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package curate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mweiqi/magazine-collector/internal/epub"
	"github.com/mweiqi/magazine-collector/pkg/types"
)

// DocumentSource turns one source file into its raw documents. The EPUB
// reader is the production implementation; tests substitute fakes.
type DocumentSource interface {
	Documents(path string) ([]types.RawDocument, error)
}

// FileSource reads EPUB archives through the epub package and treats any
// other file as a single plain-text document.
type FileSource struct{}

// Documents implements DocumentSource.
func (FileSource) Documents(path string) ([]types.RawDocument, error) {
	if strings.EqualFold(filepath.Ext(path), ".epub") {
		return epub.Documents(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return []types.RawDocument{{SourceFile: path, DocumentIndex: 0, Text: string(data)}}, nil
}

// sourceFiles lists a publication directory's issue files, newest first by
// modification time, names as a deterministic tie-break.
func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading publication directory %s: %w", dir, err)
	}

	type candidate struct {
		path    string
		modTime int64
	}
	var files []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".epub", ".txt":
		default:
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].modTime != files[j].modTime {
			return files[i].modTime > files[j].modTime
		}
		return files[i].path > files[j].path
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}

// Stem returns a source file's base name without its extension; it is the
// key used for idempotence checks and output file names.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
