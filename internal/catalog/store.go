// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog maintains a queryable SQLite index over the persisted
// article files. The index is derived state: rebuilding it re-reads every
// article's frontmatter and body from disk, and topics are re-derived from
// the body text rather than trusted from any cache.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/mweiqi/magazine-collector/internal/classify"
	"github.com/mweiqi/magazine-collector/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "collector.db"
)

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
	classifier *classify.Classifier
}

// NewStore opens or creates the catalog database at
// catalogDir/index/collector.db, creating the schema when absent.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CatalogDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultCatalogConfig().MaxResults
	}

	s := &Store{
		db:         db,
		maxResults: maxResults,
		classifier: classify.New(nil, types.DefaultClassifyConfig()),
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			path TEXT PRIMARY KEY,
			title TEXT,
			author TEXT,
			journal TEXT,
			topic TEXT,
			words INTEGER,
			reading_time INTEGER,
			body TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_journal ON articles(journal)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_topic ON articles(topic)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='articles_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE articles_fts USING fts5(title, body, content=articles, content_rowid=rowid)`,
			`CREATE TRIGGER articles_ai AFTER INSERT ON articles BEGIN
				INSERT INTO articles_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
			`CREATE TRIGGER articles_ad AFTER DELETE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
			END`,
			`CREATE TRIGGER articles_au AFTER UPDATE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
				INSERT INTO articles_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}
	return nil
}

// RebuildSummary holds counts from a catalog rebuild.
type RebuildSummary struct {
	Indexed int
	Failed  int
}

// Total returns the number of article files processed.
func (r RebuildSummary) Total() int {
	return r.Indexed + r.Failed
}

var articleFilePattern = regexp.MustCompile(`_art_\d+\.md$`)

// Rebuild drops the index and re-derives it from the article files under
// articlesDir. Topics come from re-classifying each body, so topic keyword
// changes take effect on the next rebuild without touching the files.
func (s *Store) Rebuild(ctx context.Context, articlesDir string, w io.Writer) (RebuildSummary, error) {
	var files []string
	err := filepath.WalkDir(articlesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && articleFilePattern.MatchString(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return RebuildSummary{}, fmt.Errorf("scanning articles directory %s: %w", articlesDir, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RebuildSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM articles`); err != nil {
		return RebuildSummary{}, fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (path, title, author, journal, topic, words, reading_time, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return RebuildSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var summary RebuildSummary
	for _, path := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		art, err := readArticleFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", filepath.Base(path), err)
			summary.Failed++
			continue
		}

		topic := s.classifier.Classify(art.body)
		if _, err := stmt.ExecContext(ctx, path, art.Title, art.Author, art.Journal,
			topic, art.Words, art.minutes(), art.body); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", filepath.Base(path), err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "indexed %s\n", filepath.Base(path))
		summary.Indexed++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing rebuild: %w", err)
	}

	fmt.Fprintf(w, "\nindexed: %d, failed: %d\n", summary.Indexed, summary.Failed)
	return summary, nil
}

// articleFile is the parsed form of one persisted article.
type articleFile struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Journal     string `yaml:"journal"`
	Words       int    `yaml:"words"`
	ReadingTime string `yaml:"reading_time"`

	body string
}

// minutes parses the "~N min read" frontmatter value, zero when malformed.
func (a articleFile) minutes() int {
	var mins int
	if _, err := fmt.Sscanf(a.ReadingTime, "~%d min read", &mins); err != nil {
		return 0
	}
	return mins
}

// readArticleFile splits an article file into its frontmatter and body.
func readArticleFile(path string) (*articleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		return nil, fmt.Errorf("missing frontmatter fence")
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return nil, fmt.Errorf("unterminated frontmatter")
	}

	var art articleFile
	if err := yaml.Unmarshal([]byte(rest[:end]), &art); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	art.body = strings.TrimSpace(rest[end+len("\n---\n"):])
	return &art, nil
}
