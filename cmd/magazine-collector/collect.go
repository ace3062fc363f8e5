// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mweiqi/magazine-collector/internal/curate"
	"github.com/mweiqi/magazine-collector/pkg/types"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run the collection pipeline over the source tree",
	Long: `Collect walks the source tree one publication at a time, decodes the
newest issue that has not been collected yet, and writes each surviving
article as a Markdown file with YAML frontmatter under the articles
directory. Issues whose articles already exist are skipped, so repeated
runs only pick up new downloads.`,
	RunE: runCollect,
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := collectConfig(cmd)
	if err != nil {
		return err
	}

	o, err := curate.New(cfg, nil, logger)
	if err != nil {
		return err
	}

	result, err := o.Run(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d source file(s) failed", result.Failed)
	}
	return nil
}

// collectConfig layers flag overrides on top of the config file and the
// built-in defaults.
func collectConfig(cmd *cobra.Command) (types.CollectConfig, error) {
	cfg := types.DefaultCollectConfig()

	if v := viper.GetString("source_dir"); v != "" {
		cfg.SourceDir = v
	}
	if v := viper.GetString("articles_dir"); v != "" {
		cfg.ArticlesDir = v
	}
	if v := viper.GetString("group_by"); v != "" {
		cfg.GroupBy = v
	}
	if pubs := viper.GetStringMapString("publications"); len(pubs) > 0 {
		cfg.Publications = pubs
	}
	if v := viper.GetInt("segment.min_words"); v > 0 {
		cfg.Segment.MinWords = v
	}

	if cmd.Flags().Changed("source-dir") {
		cfg.SourceDir, _ = cmd.Flags().GetString("source-dir")
	}
	if cmd.Flags().Changed("articles-dir") {
		cfg.ArticlesDir, _ = cmd.Flags().GetString("articles-dir")
	}
	if cmd.Flags().Changed("group-by") {
		cfg.GroupBy, _ = cmd.Flags().GetString("group-by")
	}
	if cmd.Flags().Changed("min-words") {
		cfg.Segment.MinWords, _ = cmd.Flags().GetInt("min-words")
	}

	if cfg.GroupBy != types.GroupByJournal && cfg.GroupBy != types.GroupByTopic {
		return cfg, fmt.Errorf("unsupported group-by %q: use %s or %s",
			cfg.GroupBy, types.GroupByJournal, types.GroupByTopic)
	}
	return cfg, nil
}

func init() {
	collectCmd.Flags().String("source-dir", "sources", "source tree with one directory per publication")
	collectCmd.Flags().String("articles-dir", "articles", "output directory for collected articles")
	collectCmd.Flags().String("group-by", "journal", "output grouping: journal or topic")
	collectCmd.Flags().Int("min-words", 0, "minimum words per article (0 = use default)")

	rootCmd.AddCommand(collectCmd)
}
