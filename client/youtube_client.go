package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/researchaccelerator-hub/channel-scout/common"
	youtubemodel "github.com/researchaccelerator-hub/channel-scout/model/youtube"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// MaxIDsPerCall is the YouTube Data API ceiling on identifiers per list call
// and on results per search page.
const MaxIDsPerCall = 50

// YouTubeDataClient implements the youtube.Client interface for accessing the
// YouTube Data API.
type YouTubeDataClient struct {
	service *ytapi.Service
	apiKey  string
}

// NewYouTubeDataClient creates a new YouTube data client
func NewYouTubeDataClient(apiKey string) (*YouTubeDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	return &YouTubeDataClient{
		apiKey: apiKey,
	}, nil
}

// Connect establishes a connection to the YouTube API
func (c *YouTubeDataClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	// Create a new HTTP client with default timeout
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube API successfully")
	return nil
}

// Disconnect closes the connection to the YouTube API
func (c *YouTubeDataClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

// SearchChannelIDs runs one page of a keyword channel search and returns the
// matched channel IDs together with the cursor for the next page.
func (c *YouTubeDataClient) SearchChannelIDs(ctx context.Context, query string, maxResults int64, pageToken string, order string) (*youtubemodel.SearchPage, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}
	if maxResults > MaxIDsPerCall {
		maxResults = MaxIDsPerCall
	}

	log.Debug().
		Str("query", query).
		Int64("max_results", maxResults).
		Str("order", order).
		Msg("Searching YouTube channels")

	call := c.service.Search.List([]string{"id"}).
		Q(query).
		Type("channel").
		MaxResults(maxResults).
		Order(order).
		Context(ctx)

	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Failed to search channels on YouTube API")
		return nil, fmt.Errorf("failed to search channels on YouTube API: %w", err)
	}

	page := &youtubemodel.SearchPage{
		ChannelIDs:    make([]string, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		if item.Id == nil || item.Id.ChannelId == "" {
			continue
		}
		page.ChannelIDs = append(page.ChannelIDs, item.Id.ChannelId)
	}

	log.Debug().
		Int("id_count", len(page.ChannelIDs)).
		Bool("has_next_page", page.NextPageToken != "").
		Msg("YouTube channel search page retrieved")

	return page, nil
}

// GetChannelDetails fetches full channel records for up to 50 channel IDs in a
// single batch call. Responses are decoded here, once, into the channel model:
// hidden subscriber counts come back as nil rather than zero.
func (c *YouTubeDataClient) GetChannelDetails(ctx context.Context, ids []string) ([]*youtubemodel.Channel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}
	if len(ids) > MaxIDsPerCall {
		return nil, fmt.Errorf("too many channel IDs in one lookup: %d (max %d)", len(ids), MaxIDsPerCall)
	}

	response, err := c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Strs("channel_ids", ids).Msg("Failed to get channel details from YouTube API")
		return nil, fmt.Errorf("failed to get channel details from YouTube API: %w", err)
	}

	channels := make([]*youtubemodel.Channel, 0, len(response.Items))
	for _, item := range response.Items {
		channel := &youtubemodel.Channel{
			ID: item.Id,
		}

		if item.Snippet != nil {
			channel.Title = item.Snippet.Title
			channel.Description = item.Snippet.Description
			if publishedAt, ok := common.ParseTimestamp(item.Snippet.PublishedAt); ok {
				channel.PublishedAt = publishedAt
			}
		}

		if item.Statistics != nil {
			channel.ViewCount = int64(item.Statistics.ViewCount)
			channel.VideoCount = int64(item.Statistics.VideoCount)
			if !item.Statistics.HiddenSubscriberCount {
				subs := int64(item.Statistics.SubscriberCount)
				channel.SubscriberCount = &subs
			}
		}

		if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
			channel.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
		}

		channels = append(channels, channel)
	}

	log.Debug().Int("channel_count", len(channels)).Msg("YouTube channel details retrieved")
	return channels, nil
}

// GetRecentUploads returns the video IDs of the most recent items in an
// uploads playlist, newest first. Items without a video reference are skipped.
func (c *YouTubeDataClient) GetRecentUploads(ctx context.Context, playlistID string, limit int64) ([]string, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}
	if limit > MaxIDsPerCall {
		limit = MaxIDsPerCall
	}

	response, err := c.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("playlist_id", playlistID).Msg("Failed to get uploads from playlist")
		return nil, fmt.Errorf("failed to get uploads from playlist: %w", err)
	}

	videoIDs := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		videoIDs = append(videoIDs, item.ContentDetails.VideoId)
	}

	return videoIDs, nil
}

// GetVideoDetails fetches full video records for up to 50 video IDs in a
// single batch call. A missing or malformed publishedAt is not fatal: the
// video comes back with PublishedOK false.
func (c *YouTubeDataClient) GetVideoDetails(ctx context.Context, ids []string) ([]*youtubemodel.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}
	if len(ids) > MaxIDsPerCall {
		return nil, fmt.Errorf("too many video IDs in one lookup: %d (max %d)", len(ids), MaxIDsPerCall)
	}

	response, err := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Strs("video_ids", ids).Msg("Failed to get video details from YouTube API")
		return nil, fmt.Errorf("failed to get video details from YouTube API: %w", err)
	}

	videos := make([]*youtubemodel.Video, 0, len(response.Items))
	for _, item := range response.Items {
		video := &youtubemodel.Video{
			ID: item.Id,
		}

		if item.Snippet != nil {
			video.Title = item.Snippet.Title
			video.ChannelID = item.Snippet.ChannelId
			if publishedAt, ok := common.ParseTimestamp(item.Snippet.PublishedAt); ok {
				video.PublishedAt = publishedAt
				video.PublishedOK = true
			} else if item.Snippet.PublishedAt != "" {
				log.Warn().Str("date", item.Snippet.PublishedAt).Str("video_id", item.Id).Msg("Failed to parse video published date")
			}
		}

		if item.Statistics != nil {
			video.ViewCount = int64(item.Statistics.ViewCount)
		}

		videos = append(videos, video)
	}

	return videos, nil
}
