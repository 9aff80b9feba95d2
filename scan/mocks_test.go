package scan

import (
	"context"
	"errors"

	youtubemodel "github.com/researchaccelerator-hub/channel-scout/model/youtube"
)

// fakeClient implements youtubemodel.Client for testing purposes. It allows
// customizing individual method behaviors by providing function fields that
// can be set to return specific test responses or simulate errors.
type fakeClient struct {
	searchChannelIDsFunc  func(query string, maxResults int64, pageToken string, order string) (*youtubemodel.SearchPage, error)
	getChannelDetailsFunc func(ids []string) ([]*youtubemodel.Channel, error)
	getRecentUploadsFunc  func(playlistID string, limit int64) ([]string, error)
	getVideoDetailsFunc   func(ids []string) ([]*youtubemodel.Video, error)
}

func (f *fakeClient) Connect(ctx context.Context) error {
	return nil
}

func (f *fakeClient) Disconnect(ctx context.Context) error {
	return nil
}

func (f *fakeClient) SearchChannelIDs(ctx context.Context, query string, maxResults int64, pageToken string, order string) (*youtubemodel.SearchPage, error) {
	if f.searchChannelIDsFunc != nil {
		return f.searchChannelIDsFunc(query, maxResults, pageToken, order)
	}
	return nil, errors.New("searchChannelIDsFunc not implemented")
}

func (f *fakeClient) GetChannelDetails(ctx context.Context, ids []string) ([]*youtubemodel.Channel, error) {
	if f.getChannelDetailsFunc != nil {
		return f.getChannelDetailsFunc(ids)
	}
	return nil, errors.New("getChannelDetailsFunc not implemented")
}

func (f *fakeClient) GetRecentUploads(ctx context.Context, playlistID string, limit int64) ([]string, error) {
	if f.getRecentUploadsFunc != nil {
		return f.getRecentUploadsFunc(playlistID, limit)
	}
	return nil, errors.New("getRecentUploadsFunc not implemented")
}

func (f *fakeClient) GetVideoDetails(ctx context.Context, ids []string) ([]*youtubemodel.Video, error) {
	if f.getVideoDetailsFunc != nil {
		return f.getVideoDetailsFunc(ids)
	}
	return nil, errors.New("getVideoDetailsFunc not implemented")
}

// detailStub returns a detail-lookup func that fabricates one channel per
// requested ID.
func detailStub() func(ids []string) ([]*youtubemodel.Channel, error) {
	return func(ids []string) ([]*youtubemodel.Channel, error) {
		channels := make([]*youtubemodel.Channel, 0, len(ids))
		for _, id := range ids {
			channels = append(channels, &youtubemodel.Channel{ID: id, Title: "Channel " + id})
		}
		return channels, nil
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
