// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package curate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mweiqi/magazine-collector/pkg/types"
)

// writeArticle persists one article record as a Markdown file with YAML
// frontmatter under articlesDir/group/. seq is the 1-based position of the
// article within its source file. Returns the written path.
func writeArticle(articlesDir, group string, rec types.ArticleRecord, seq int) (string, error) {
	outDir := filepath.Join(articlesDir, group)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating group directory: %w", err)
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s_art_%d.md", rec.SourceStem, seq))
	if err := os.WriteFile(path, []byte(renderArticle(rec)), 0o644); err != nil {
		return "", fmt.Errorf("writing article: %w", err)
	}
	return path, nil
}

// renderArticle formats the frontmatter block and body. The frontmatter
// carries exactly five keys; everything else is derivable from the body.
func renderArticle(rec types.ArticleRecord) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", rec.Title)
	fmt.Fprintf(&b, "author: %q\n", rec.Author)
	fmt.Fprintf(&b, "journal: %q\n", rec.Journal)
	fmt.Fprintf(&b, "words: %d\n", rec.WordCount)
	fmt.Fprintf(&b, "reading_time: %q\n", fmt.Sprintf("~%d min read", rec.ReadingTime))
	b.WriteString("---\n\n")
	b.WriteString(rec.Body)
	b.WriteString("\n")
	return b.String()
}
