package analyses

import (
	"time"

	"playlist-backend/internal/modelout"
)

// Request is one inbound analysis call. Identity is the verified requester
// identity set by the auth layer; empty means unauthenticated.
type Request struct {
	PlaylistURL string
	Syllabus    string
	Identity    string
}

// Result is the outcome of a completed analysis. Persisted reports whether
// the record reached the store; durability is best-effort and a storage
// failure does not fail the analysis.
type Result struct {
	VideoTitles     []string
	Recommendations []modelout.Recommendation
	Persisted       bool
}

// Record is the persisted document shape.
type Record struct {
	ID              string                    `json:"id"`
	User            string                    `json:"user"`
	PlaylistURL     string                    `json:"playlist_url"`
	Syllabus        string                    `json:"syllabus"`
	VideoTitles     []string                  `json:"video_titles"`
	Recommendations []modelout.Recommendation `json:"recommendations"`
	CreatedAt       time.Time                 `json:"created_at"`
}
