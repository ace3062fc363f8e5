// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mweiqi/magazine-collector/internal/catalog"
	"github.com/mweiqi/magazine-collector/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the article catalog (rebuild, list, search, summary)",
	Long: `Catalog maintains a local SQLite index over the collected article files.
Use subcommands to rebuild the index from disk, list articles with filters,
run full-text searches, or print per-journal totals.`,
}

// --- rebuild subcommand ---

var catalogRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the catalog index from the article files",
	Long: `Rebuild drops the current index and re-reads every article file under
the articles directory. Topics are re-derived from each article body, so a
rebuild also picks up topic keyword changes.`,
	RunE: runCatalogRebuild,
}

func runCatalogRebuild(cmd *cobra.Command, args []string) error {
	store, articlesDir, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Rebuild(context.Background(), articlesDir, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d article file(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed articles with optional filters",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, _, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	journal, _ := cmd.Flags().GetString("journal")
	topic, _ := cmd.Flags().GetString("topic")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.List(context.Background(), catalog.ListOptions{
		Journal: journal,
		Topic:   topic,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No articles found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-45s  %-20s  %-14s  %6s  %s\n",
		"Title", "Journal", "Topic", "Words", "Read")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, e := range entries {
		title := e.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		journal := e.Journal
		if len(journal) > 20 {
			journal = journal[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-45s  %-20s  %-14s  %6d  ~%dm\n",
			title, journal, e.Topic, e.Words, e.ReadingTime)
	}
	fmt.Fprintf(os.Stdout, "\n%d articles\n", len(entries))
	return nil
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over article titles and bodies",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, _, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	hits, err := store.Search(context.Background(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for i, h := range hits {
		fmt.Fprintf(os.Stdout, "%d. %s (%s, %s)\n   %s\n", i+1, h.Title, h.Journal, h.Topic, h.Snippet)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(hits))
	return nil
}

// --- summary subcommand ---

var catalogSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print article and word counts per journal",
	RunE:  runCatalogSummary,
}

func runCatalogSummary(cmd *cobra.Command, args []string) error {
	store, _, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	counts, err := store.Summary(context.Background())
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %8s  %10s\n", "Journal", "Articles", "Words")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 52))
	for _, c := range counts {
		fmt.Fprintf(os.Stdout, "%-30s  %8d  %10d\n", c.Journal, c.Articles, c.Words)
	}
	return nil
}

// --- shared helpers ---

func openCatalog(cmd *cobra.Command) (*catalog.Store, string, error) {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	articlesDir, _ := cmd.Flags().GetString("articles-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	store, err := catalog.NewStore(types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, "", err
	}
	return store, articlesDir, nil
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "catalog", "base directory for the catalog index")
	catalogCmd.PersistentFlags().String("articles-dir", "articles", "directory holding collected articles")
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	catalogListCmd.Flags().String("journal", "", "filter by journal name")
	catalogListCmd.Flags().String("topic", "", "filter by topic")
	catalogListCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogListCmd.Flags().Bool("json", false, "output results as JSON")

	catalogSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")

	catalogCmd.AddCommand(catalogRebuildCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogSummaryCmd)

	rootCmd.AddCommand(catalogCmd)
}
