// Package model contains the data structures shared across the scanner.
package model

import "fmt"

// Order values accepted by the channel search.
const (
	OrderRelevance = "relevance"
	OrderDate      = "date"
	OrderViewCount = "viewCount"
)

// SearchCriteria describes one scan run. Constructed once from user input and
// immutable for the duration of the run.
type SearchCriteria struct {
	Keyword    string
	SubMin     int64
	SubMax     int64
	MaxResults int
	MaxPages   int
	Order      string
}

// Validate rejects criteria that would make the run meaningless before any
// transport call is issued.
func (c *SearchCriteria) Validate() error {
	if c.Keyword == "" {
		return fmt.Errorf("search keyword cannot be empty")
	}
	if c.SubMin > c.SubMax {
		return fmt.Errorf("subscriber minimum %d exceeds maximum %d", c.SubMin, c.SubMax)
	}
	if c.MaxPages < 1 {
		return fmt.Errorf("max_pages must be at least 1")
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1")
	}
	switch c.Order {
	case OrderRelevance, OrderDate, OrderViewCount:
	default:
		return fmt.Errorf("invalid order '%s', must be one of: relevance, date, viewCount", c.Order)
	}
	return nil
}

// FilterReason categorizes why a channel was dropped by the pipeline.
type FilterReason string

const (
	// FilterSubscribers marks channels with an unknown or out-of-range
	// subscriber count.
	FilterSubscribers FilterReason = "subscribers"

	// FilterRecency marks channels whose latest upload is missing or older
	// than the recency threshold.
	FilterRecency FilterReason = "recency"
)

// ReportRow is one surviving channel in the final report. Field order matches
// the exported CSV column order.
type ReportRow struct {
	ChannelName     string
	ChannelID       string
	ChannelURL      string
	SubscriberCount int64
	ViewCount       int64
	LatestPostDate  string
	Description     string
	Emails          string
}

// ScanStats summarizes one pipeline run.
type ScanStats struct {
	Passed                int
	FilteredOut           int
	FilteredBySubscribers int
	FilteredByRecency     int
}
