package playlist

import (
	"context"
	"errors"
)

// Video is one playlist entry. Index is the 1-based position in the source
// playlist; order is significant and preserved end-to-end.
type Video struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// Source fetches flattened playlist entries without downloading media.
type Source interface {
	Fetch(ctx context.Context, playlistURL string) ([]Video, error)
}

var (
	// ErrInvalidURL indicates the playlist URL carried no playlist ID.
	ErrInvalidURL = errors.New("playlist URL is not valid")

	// ErrNotFound indicates the playlist does not exist or is private.
	ErrNotFound = errors.New("playlist not found or unavailable")
)

// Titles extracts title strings in playlist order.
func Titles(videos []Video) []string {
	titles := make([]string, 0, len(videos))
	for _, v := range videos {
		titles = append(titles, v.Title)
	}
	return titles
}
