package main

import (
	"context"
	"fmt"
	"os"

	"github.com/researchaccelerator-hub/channel-scout/config"
	"github.com/researchaccelerator-hub/channel-scout/runner"
	"github.com/researchaccelerator-hub/channel-scout/scan"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg := config.DefaultScanConfig()
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "channel-scout",
		Short: "Search YouTube for small active channels and export a contact report",
		Long: `channel-scout searches the YouTube Data API for channels matching a keyword,
keeps those within a subscriber range that uploaded within the last 180 days,
and exports the survivors as a CSV report with contact emails extracted from
channel descriptions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			outcome, err := runner.Run(context.Background(), cfg, scan.LogSink{})
			if err != nil {
				log.Error().
					Err(err).
					Str("category", string(runner.Classify(err))).
					Msg("Scan failed")
				return err
			}

			if outcome.ChannelsFound == 0 {
				fmt.Println("No channels found. Try a different keyword or ordering.")
				return nil
			}
			if len(outcome.Rows) == 0 {
				fmt.Printf("No channels matched the filters (%d searched, %d filtered out).\n",
					outcome.ChannelsFound, outcome.Stats.FilteredOut)
				return nil
			}

			fmt.Printf("Report written to %s: %d channels passed, %d filtered out.\n",
				outcome.ReportPath, outcome.Stats.Passed, outcome.Stats.FilteredOut)
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "YouTube Data API key (defaults to YOUTUBE_API_KEY)")
	flags.StringVar(&cfg.Keyword, "keyword", "", "Search keyword (required)")
	flags.StringVar(&cfg.SubMinText, "sub-min", cfg.SubMinText, "Minimum subscriber count")
	flags.StringVar(&cfg.SubMaxText, "sub-max", cfg.SubMaxText, "Maximum subscriber count")
	flags.IntVar(&cfg.MaxPages, "max-pages", cfg.MaxPages, "Maximum search depth in pages (one page = up to 50 channels)")
	flags.StringVar(&cfg.Order, "order", cfg.Order, "Search ordering: relevance, date or viewCount")
	flags.Int64Var(&cfg.ProbeDepth, "probe-depth", cfg.ProbeDepth, "Recent uploads inspected per channel for the recency check")
	flags.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Path of the exported CSV report")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	_ = rootCmd.MarkFlagRequired("keyword")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
