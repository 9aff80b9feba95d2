// Package runner wires the scanner end to end: configuration validation,
// transport setup, pagination, filtering, and report export for one run.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/researchaccelerator-hub/channel-scout/client"
	"github.com/researchaccelerator-hub/channel-scout/common"
	"github.com/researchaccelerator-hub/channel-scout/config"
	"github.com/researchaccelerator-hub/channel-scout/export"
	"github.com/researchaccelerator-hub/channel-scout/model"
	"github.com/researchaccelerator-hub/channel-scout/scan"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
)

// ErrorCategory distinguishes terminal failure kinds for caller-side
// reporting.
type ErrorCategory string

const (
	// ErrorTransport covers YouTube API failures, including authorization and
	// quota errors.
	ErrorTransport ErrorCategory = "transport"

	// ErrorUnexpected covers everything else.
	ErrorUnexpected ErrorCategory = "unexpected"
)

// Classify maps a run error to its failure category.
func Classify(err error) ErrorCategory {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return ErrorTransport
	}
	return ErrorUnexpected
}

// Outcome summarizes a completed run. ChannelsFound is the raw search hit
// count before filtering; Rows is empty when nothing survived.
type Outcome struct {
	RunID         string
	ChannelsFound int
	Rows          []model.ReportRow
	Stats         model.ScanStats
	ReportPath    string
}

// Run executes one full scan: validates the configuration before any
// transport call, searches and filters channels, and exports surviving rows
// as CSV. Zero search hits and zero surviving rows are explicit non-error
// outcomes with no report written. Transport failures abort the run and
// propagate.
func Run(ctx context.Context, cfg *config.ScanConfig, sink scan.ProgressSink) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan configuration: %w", err)
	}

	outcome := &Outcome{RunID: common.GenerateRunID()}
	criteria := cfg.Criteria()

	log.Info().
		Str("run_id", outcome.RunID).
		Str("keyword", criteria.Keyword).
		Int64("sub_min", criteria.SubMin).
		Int64("sub_max", criteria.SubMax).
		Int("max_pages", criteria.MaxPages).
		Str("order", criteria.Order).
		Msg("Starting channel scan")

	yt, err := client.NewYouTubeDataClient(cfg.APIKey)
	if err != nil {
		return nil, err
	}
	if err := yt.Connect(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := yt.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Error disconnecting YouTube client")
		}
	}()

	channels, err := scan.NewPaginator(yt).FetchChannels(ctx, criteria, sink)
	if err != nil {
		return nil, err
	}
	outcome.ChannelsFound = len(channels)

	if len(channels) == 0 {
		log.Warn().Str("keyword", criteria.Keyword).Msg("Search returned no channels, nothing to filter")
		return outcome, nil
	}

	pipeline := scan.NewPipeline(scan.NewProber(yt, cfg.ProbeDepth))
	rows, stats, err := pipeline.Run(ctx, channels, criteria, sink)
	if err != nil {
		return nil, err
	}
	outcome.Rows = rows
	outcome.Stats = stats

	if len(rows) == 0 {
		log.Warn().
			Int("filtered_out", stats.FilteredOut).
			Msg("No channels matched the subscriber and recency filters, skipping export")
		return outcome, nil
	}

	if err := export.WriteCSVFile(cfg.OutputPath, rows); err != nil {
		return nil, err
	}
	outcome.ReportPath = cfg.OutputPath

	log.Info().
		Str("run_id", outcome.RunID).
		Int("passed", stats.Passed).
		Int("filtered_out", stats.FilteredOut).
		Str("report", cfg.OutputPath).
		Msg("Channel scan complete")

	return outcome, nil
}
