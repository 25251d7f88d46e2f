package video

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const watchURL = "https://www.youtube.com/watch?v="

var ErrNoVideo = errors.New("no videos found")

type Searcher interface {
	// FindVideo returns the watch URL of the best matching video.
	FindVideo(ctx context.Context, query string) (string, error)
}

type YouTubeClient struct {
	service *youtube.Service
}

func NewYouTubeClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTubeClient, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube client: %w", err)
	}
	return &YouTubeClient{service: service}, nil
}

// FindVideo searches for one embeddable, medium length video.
func (c *YouTubeClient) FindVideo(ctx context.Context, query string) (string, error) {
	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(1).
		Type("video").
		VideoEmbeddable("true").
		VideoDuration("medium").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("youtube search: %w", err)
	}

	if len(resp.Items) == 0 || resp.Items[0].Id == nil || resp.Items[0].Id.VideoId == "" {
		return "", ErrNoVideo
	}

	return watchURL + resp.Items[0].Id.VideoId, nil
}
