// Package scan implements the channel search and filtering pipeline: paged
// keyword search, batched detail lookups, and the subscriber/recency filters
// that turn raw channel records into report rows.
package scan

import (
	"context"
	"fmt"

	"github.com/researchaccelerator-hub/channel-scout/client"
	"github.com/researchaccelerator-hub/channel-scout/model"
	youtubemodel "github.com/researchaccelerator-hub/channel-scout/model/youtube"
	"github.com/rs/zerolog/log"
)

// Paginator drives the paged keyword search and accumulates full channel
// records up to the criteria's result and page caps.
type Paginator struct {
	client youtubemodel.Client
}

// NewPaginator creates a paginator backed by the given client.
func NewPaginator(c youtubemodel.Client) *Paginator {
	return &Paginator{client: c}
}

// FetchChannels pages through the keyword search until the result cap or page
// cap is reached, or the search is exhausted. Each page requests at most
// min(50, remaining) identifiers and the returned identifiers are resolved to
// full records in batches of 50. Transport failures propagate to the caller
// unretried.
func (p *Paginator) FetchChannels(ctx context.Context, criteria model.SearchCriteria, sink ProgressSink) ([]*youtubemodel.Channel, error) {
	channels := make([]*youtubemodel.Channel, 0, criteria.MaxResults)
	pageToken := ""
	page := 1

	for len(channels) < criteria.MaxResults && page <= criteria.MaxPages {
		remaining := criteria.MaxResults - len(channels)
		sink.PageStarted(page, len(channels))

		pageSize := int64(remaining)
		if pageSize > client.MaxIDsPerCall {
			pageSize = client.MaxIDsPerCall
		}

		searchPage, err := p.client.SearchChannelIDs(ctx, criteria.Keyword, pageSize, pageToken, criteria.Order)
		if err != nil {
			return nil, fmt.Errorf("channel search page %d failed: %w", page, err)
		}

		if len(searchPage.ChannelIDs) == 0 {
			log.Debug().Int("page", page).Msg("Search returned no channel IDs, stopping pagination")
			break
		}

		for start := 0; start < len(searchPage.ChannelIDs); start += client.MaxIDsPerCall {
			end := start + client.MaxIDsPerCall
			if end > len(searchPage.ChannelIDs) {
				end = len(searchPage.ChannelIDs)
			}

			details, err := p.client.GetChannelDetails(ctx, searchPage.ChannelIDs[start:end])
			if err != nil {
				return nil, fmt.Errorf("channel detail lookup failed: %w", err)
			}
			channels = append(channels, details...)
		}

		if searchPage.NextPageToken == "" {
			break
		}
		pageToken = searchPage.NextPageToken
		page++
	}

	if len(channels) > criteria.MaxResults {
		channels = channels[:criteria.MaxResults]
	}

	log.Info().Int("channel_count", len(channels)).Msg("Channel search complete")
	return channels, nil
}
