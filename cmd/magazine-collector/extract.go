// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mweiqi/magazine-collector/internal/curate"
	"github.com/mweiqi/magazine-collector/internal/segment"
	"github.com/mweiqi/magazine-collector/internal/textnorm"
	"github.com/mweiqi/magazine-collector/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Dump the normalized text or article candidates of one issue",
	Long: `Extract decodes a single issue file and prints its normalized text to
stdout. With --candidates it runs segmentation as well and prints each
article candidate that would survive the validation gates, which is useful
for tuning thresholds before a full collect run.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	docs, err := curate.FileSource{}.Documents(args[0])
	if err != nil {
		return err
	}

	showCandidates, _ := cmd.Flags().GetBool("candidates")
	if !showCandidates {
		for _, doc := range docs {
			fmt.Println(textnorm.Normalize(doc.Text))
		}
		return nil
	}

	seg, err := segment.New(types.DefaultSegmentConfig())
	if err != nil {
		return err
	}

	total := 0
	for _, doc := range docs {
		for _, candidate := range seg.Segment(textnorm.Normalize(doc.Text)) {
			total++
			fmt.Fprintf(os.Stdout, "--- candidate %d (%d words) ---\n%s\n\n",
				total, segment.WordCount(candidate), candidate)
		}
	}
	fmt.Fprintf(os.Stdout, "%s: %d candidates\n", strings.TrimSpace(args[0]), total)
	return nil
}

func init() {
	extractCmd.Flags().Bool("candidates", false, "print validated article candidates instead of raw text")

	rootCmd.AddCommand(extractCmd)
}
