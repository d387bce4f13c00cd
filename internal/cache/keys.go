package cache

import "fmt"

// Artifact kinds stored in the cache, one entry per (video, kind).
const (
	KindTranscript = "transcript"
	KindSummary    = "summary"
)

// Key builds the cache key for a video artifact: {video_id}_{kind}.
// Keys are derived from the stable video ID, not the raw URL, so the
// same video reached through different URL shapes shares one entry.
func Key(videoID, kind string) string {
	return fmt.Sprintf("%s_%s", videoID, kind)
}
