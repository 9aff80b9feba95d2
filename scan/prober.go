package scan

import (
	"context"
	"time"

	youtubemodel "github.com/researchaccelerator-hub/channel-scout/model/youtube"
	"github.com/rs/zerolog/log"
)

// DefaultProbeDepth is how many recent uploads are inspected per channel when
// no depth is configured. One is enough to find the latest publish instant
// because the uploads playlist is ordered newest first.
const DefaultProbeDepth = 1

// Prober resolves a channel's most recent upload timestamp.
type Prober struct {
	client youtubemodel.Client
	depth  int64
}

// NewProber creates a prober that inspects up to depth recent uploads per
// channel. A depth below 1 falls back to DefaultProbeDepth.
func NewProber(c youtubemodel.Client, depth int64) *Prober {
	if depth < 1 {
		depth = DefaultProbeDepth
	}
	return &Prober{client: c, depth: depth}
}

// LatestUpload returns the publish instant of the channel's most recent
// upload, or ok=false when the channel has no uploads playlist, the playlist
// is empty, or no fetched video carries a parseable publish date. Transport
// failures are returned as errors and are the caller's to handle.
func (p *Prober) LatestUpload(ctx context.Context, channel *youtubemodel.Channel) (time.Time, bool, error) {
	if channel.UploadsPlaylistID == "" {
		log.Debug().Str("channel_id", channel.ID).Msg("Channel has no uploads playlist")
		return time.Time{}, false, nil
	}

	videoIDs, err := p.client.GetRecentUploads(ctx, channel.UploadsPlaylistID, p.depth)
	if err != nil {
		return time.Time{}, false, err
	}
	if len(videoIDs) == 0 {
		return time.Time{}, false, nil
	}

	videos, err := p.client.GetVideoDetails(ctx, videoIDs)
	if err != nil {
		return time.Time{}, false, err
	}

	var latest time.Time
	found := false
	for _, video := range videos {
		if !video.PublishedOK {
			continue
		}
		if !found || video.PublishedAt.After(latest) {
			latest = video.PublishedAt
			found = true
		}
	}

	return latest, found, nil
}
