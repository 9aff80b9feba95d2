package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/researchaccelerator-hub/channel-scout/common"
	"github.com/researchaccelerator-hub/channel-scout/model"
	youtubemodel "github.com/researchaccelerator-hub/channel-scout/model/youtube"
	"github.com/rs/zerolog/log"
)

// RecencyWindow is the fixed activity cutoff: channels whose latest upload is
// older than 180 days (six 30-day months, not calendar months) are dropped.
const RecencyWindow = 180 * 24 * time.Hour

// Pipeline applies the subscriber-range and recency filters to a fetched
// channel list and assembles the surviving records into report rows.
type Pipeline struct {
	prober *Prober
	now    func() time.Time
}

// NewPipeline creates a pipeline using the given prober for recency checks.
func NewPipeline(prober *Prober) *Pipeline {
	return &Pipeline{
		prober: prober,
		now:    time.Now,
	}
}

// Run filters channels in their original fetch order and returns the report
// rows for those that pass, together with pass/fail statistics. The sink is
// invoked synchronously for every per-channel decision. A transport failure
// during a recency probe aborts the run.
func (p *Pipeline) Run(ctx context.Context, channels []*youtubemodel.Channel, criteria model.SearchCriteria, sink ProgressSink) ([]model.ReportRow, model.ScanStats, error) {
	rows := make([]model.ReportRow, 0, len(channels))
	stats := model.ScanStats{}
	threshold := p.now().UTC().Add(-RecencyWindow)
	total := len(channels)

	for i, channel := range channels {
		index := i + 1

		// Channels may keep their subscriber count private; those cannot be
		// range-checked and are excluded.
		if channel.SubscriberCount == nil || *channel.SubscriberCount < criteria.SubMin || *channel.SubscriberCount > criteria.SubMax {
			stats.FilteredOut++
			stats.FilteredBySubscribers++
			sink.ChannelRejected(index, total, model.FilterSubscribers)
			continue
		}

		latest, found, err := p.prober.LatestUpload(ctx, channel)
		if err != nil {
			return nil, stats, fmt.Errorf("recency probe for channel %s failed: %w", channel.ID, err)
		}
		if !found || latest.Before(threshold) {
			stats.FilteredOut++
			stats.FilteredByRecency++
			sink.ChannelRejected(index, total, model.FilterRecency)
			continue
		}

		channelURL := ""
		if channel.ID != "" {
			channelURL = fmt.Sprintf("https://www.youtube.com/channel/%s", channel.ID)
		}

		rows = append(rows, model.ReportRow{
			ChannelName:     channel.Title,
			ChannelID:       channel.ID,
			ChannelURL:      channelURL,
			SubscriberCount: *channel.SubscriberCount,
			ViewCount:       channel.ViewCount,
			LatestPostDate:  latest.Format("2006-01-02"),
			Description:     channel.Description,
			Emails:          common.ExtractEmails(channel.Description),
		})
		stats.Passed++
		sink.ChannelAccepted(index, total, channel.Title)
	}

	log.Info().
		Int("passed", stats.Passed).
		Int("filtered_out", stats.FilteredOut).
		Int("filtered_subscribers", stats.FilteredBySubscribers).
		Int("filtered_recency", stats.FilteredByRecency).
		Msg("Channel filtering complete")

	return rows, stats, nil
}
