// Package config provides configuration structures for the channel scanner
package config

import (
	"fmt"

	"github.com/researchaccelerator-hub/channel-scout/common"
	"github.com/researchaccelerator-hub/channel-scout/model"
	"github.com/spf13/viper"
)

// Page size of the YouTube channel search; one page yields at most 50 results.
const resultsPerPage = 50

// Hard ceiling on search depth, matching the API quota budget of one run.
const maxSearchPages = 10

// ScanConfig holds one run's configuration. Subscriber bounds are kept as the
// raw text the user supplied and coerced when the criteria are built.
type ScanConfig struct {
	APIKey     string
	Keyword    string
	SubMinText string
	SubMaxText string
	MaxPages   int
	Order      string
	ProbeDepth int64
	OutputPath string
}

// DefaultScanConfig returns a configuration with sensible defaults.
func DefaultScanConfig() *ScanConfig {
	return &ScanConfig{
		APIKey:     APIKeyFromEnv(),
		SubMinText: "2000",
		SubMaxText: "10000",
		MaxPages:   maxSearchPages,
		Order:      model.OrderRelevance,
		ProbeDepth: 1,
		OutputPath: "youtube_channels.csv",
	}
}

// APIKeyFromEnv reads the YouTube API key from the environment.
func APIKeyFromEnv() string {
	v := viper.New()
	v.AutomaticEnv()
	return v.GetString("YOUTUBE_API_KEY")
}

// Criteria coerces the raw inputs into immutable search criteria. Non-numeric
// subscriber bounds fall back to 0 and 1,000,000; out-of-range values are
// clamped rather than rejected. The result cap is pages times page size.
func (c *ScanConfig) Criteria() model.SearchCriteria {
	pages := c.MaxPages
	if pages < 1 {
		pages = 1
	}
	if pages > maxSearchPages {
		pages = maxSearchPages
	}

	return model.SearchCriteria{
		Keyword:    c.Keyword,
		SubMin:     common.ParseInt64(c.SubMinText, 0, common.Int64Ptr(0), nil),
		SubMax:     common.ParseInt64(c.SubMaxText, 1_000_000, common.Int64Ptr(1), nil),
		MaxResults: pages * resultsPerPage,
		MaxPages:   pages,
		Order:      c.Order,
	}
}

// Validate checks if the configuration is valid
func (c *ScanConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (flag --api-key or YOUTUBE_API_KEY)")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if c.ProbeDepth < 1 {
		return fmt.Errorf("probe_depth must be at least 1")
	}

	criteria := c.Criteria()
	if err := criteria.Validate(); err != nil {
		return err
	}
	return nil
}
