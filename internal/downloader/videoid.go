package downloader

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// VideoID extracts the stable 11-character video identifier from any of
// the usual YouTube URL shapes. The identifier, not the URL, keys the
// cache: different URLs for the same video share one identity.
func (d *implDownloader) VideoID(videoURL string) (string, error) {
	parsed, err := url.Parse(videoURL)
	if err != nil {
		return "", fmt.Errorf("parse video URL: %w", err)
	}

	var id string
	host := strings.TrimPrefix(parsed.Hostname(), "www.")

	switch host {
	case "youtu.be":
		id = strings.Trim(parsed.Path, "/")
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
		switch segments[0] {
		case "watch":
			id = parsed.Query().Get("v")
		case "embed", "shorts", "live", "v":
			if len(segments) > 1 {
				id = segments[1]
			}
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("no video ID found in URL %q", videoURL)
	}

	return id, nil
}
