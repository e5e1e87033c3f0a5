package playlist

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const pageSize = 50

// YouTubeSource implements Source against the YouTube Data API v3.
type YouTubeSource struct {
	svc *youtube.Service
}

// NewYouTubeSource constructs a YouTubeSource with the given API key.
func NewYouTubeSource(ctx context.Context, apiKey string) (*YouTubeSource, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY is required")
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &YouTubeSource{svc: svc}, nil
}

// Fetch lists all playlist items in order, paging until exhausted. Only
// snippet metadata is requested; nothing is downloaded.
func (s *YouTubeSource) Fetch(ctx context.Context, playlistURL string) ([]Video, error) {
	playlistID, err := ParsePlaylistID(playlistURL)
	if err != nil {
		return nil, err
	}

	var videos []Video
	pageToken := ""
	for {
		call := s.svc.PlaylistItems.List([]string{"snippet"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) && apiErr.Code == 404 {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, playlistID)
			}
			return nil, fmt.Errorf("list playlist items: %w", err)
		}

		for _, item := range resp.Items {
			if item.Snippet == nil {
				continue
			}
			videos = append(videos, Video{
				Index: len(videos) + 1,
				Title: item.Snippet.Title,
			})
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return videos, nil
		}
	}
}

// ParsePlaylistID extracts the playlist ID from a YouTube URL (the list=
// query parameter) or accepts a bare playlist ID.
func ParsePlaylistID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "www.") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}
		id := u.Query().Get("list")
		if id == "" {
			return "", fmt.Errorf("%w: missing list parameter", ErrInvalidURL)
		}
		return id, nil
	}

	// Bare playlist IDs contain no separators.
	if strings.ContainsAny(raw, " /?&=") {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return raw, nil
}

var _ Source = (*YouTubeSource)(nil)
