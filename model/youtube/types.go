// Package youtube contains YouTube-specific data models
package youtube

import (
	"context"
	"time"
)

// Channel represents a YouTube channel as decoded at the transport boundary.
// SubscriberCount is nil when the channel hides its subscriber count.
type Channel struct {
	ID                string
	Title             string
	Description       string
	SubscriberCount   *int64
	ViewCount         int64
	VideoCount        int64
	UploadsPlaylistID string
	PublishedAt       time.Time
}

// Video represents a YouTube video. PublishedOK is false when the upstream
// publishedAt value was missing or unparseable.
type Video struct {
	ID          string
	ChannelID   string
	Title       string
	PublishedAt time.Time
	PublishedOK bool
	ViewCount   int64
}

// SearchPage is one page of a keyword channel search: the channel IDs it
// matched and the opaque cursor for the following page (empty on the last).
type SearchPage struct {
	ChannelIDs    []string
	NextPageToken string
}

// Client defines the methods needed for YouTube Data API operations
type Client interface {
	// Connect establishes a connection to the YouTube API
	Connect(ctx context.Context) error

	// Disconnect closes the connection to the YouTube API
	Disconnect(ctx context.Context) error

	// SearchChannelIDs runs one page of a keyword channel search. maxResults
	// must not exceed 50; pageToken is empty for the first page.
	SearchChannelIDs(ctx context.Context, query string, maxResults int64, pageToken string, order string) (*SearchPage, error)

	// GetChannelDetails fetches full channel records for up to 50 IDs.
	GetChannelDetails(ctx context.Context, ids []string) ([]*Channel, error)

	// GetRecentUploads returns the video IDs of the most recent items in an
	// uploads playlist, newest first.
	GetRecentUploads(ctx context.Context, playlistID string, limit int64) ([]string, error)

	// GetVideoDetails fetches full video records for up to 50 IDs.
	GetVideoDetails(ctx context.Context, ids []string) ([]*Video, error)
}
