// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Entry is one indexed article.
type Entry struct {
	Path        string
	Title       string
	Author      string
	Journal     string
	Topic       string
	Words       int
	ReadingTime int
}

// ListOptions filters a catalog listing. Zero values mean no filter.
type ListOptions struct {
	Journal string
	Topic   string
	Limit   int
}

// List returns indexed articles ordered by journal then title.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	q := sq.Select("path", "title", "author", "journal", "topic", "words", "reading_time").
		From("articles").
		OrderBy("journal", "title")

	if opts.Journal != "" {
		q = q.Where(sq.Eq{"journal": opts.Journal})
	}
	if opts.Topic != "" {
		q = q.Where(sq.Eq{"topic": opts.Topic})
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}
	q = q.Limit(uint64(limit))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.Title, &e.Author, &e.Journal, &e.Topic,
			&e.Words, &e.ReadingTime); err != nil {
			return nil, fmt.Errorf("scanning article row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SearchHit is one full-text match with a contextual snippet.
type SearchHit struct {
	Entry
	Snippet string
}

// Search runs an FTS5 query over article titles and bodies, best matches
// first.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT a.path, a.title, a.author, a.journal, a.topic, a.words, a.reading_time,
		        snippet(articles_fts, 1, '[', ']', '…', 12)
		 FROM articles_fts f
		 JOIN articles a ON a.rowid = f.rowid
		 WHERE articles_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var h SearchHit
		if err := rows.Scan(&h.Path, &h.Title, &h.Author, &h.Journal, &h.Topic,
			&h.Words, &h.ReadingTime, &h.Snippet); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// JournalCount is one row of the per-journal summary.
type JournalCount struct {
	Journal  string
	Articles int
	Words    int
}

// Summary aggregates article and word counts per journal.
func (s *Store) Summary(ctx context.Context) ([]JournalCount, error) {
	query, args, err := sq.Select("journal", "count(*)", "coalesce(sum(words), 0)").
		From("articles").
		GroupBy("journal").
		OrderBy("journal").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building summary query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summarizing catalog: %w", err)
	}
	defer rows.Close()

	var counts []JournalCount
	for rows.Next() {
		var c JournalCount
		if err := rows.Scan(&c.Journal, &c.Articles, &c.Words); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
