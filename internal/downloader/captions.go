package downloader

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const timedTextURL = "https://www.youtube.com/api/timedtext"

type trackList struct {
	Tracks []struct {
		LangCode string `xml:"lang_code,attr"`
		Name     string `xml:"name,attr"`
		Kind     string `xml:"kind,attr"`
	} `xml:"track"`
}

type captionDoc struct {
	Texts []struct {
		Body string `xml:",chardata"`
	} `xml:"text"`
}

// fetchCaptions downloads the human-authored caption track for the
// requested language. Auto-generated (asr) tracks are ignored; a video
// with only those reports ErrNoCaptions so audio transcription can
// take over.
func (d *implDownloader) fetchCaptions(ctx context.Context, videoID, languageCode string) (string, error) {
	listQuery := url.Values{"type": {"list"}, "v": {videoID}}
	body, err := d.timedTextGet(ctx, listQuery)
	if err != nil {
		return "", fmt.Errorf("list caption tracks: %w", err)
	}

	var list trackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return "", fmt.Errorf("parse caption track list: %w", err)
	}

	var trackName string
	found := false
	for _, track := range list.Tracks {
		if track.LangCode == languageCode && track.Kind != "asr" {
			trackName = track.Name
			found = true
			break
		}
	}
	if !found {
		return "", ErrNoCaptions
	}

	fetchQuery := url.Values{"v": {videoID}, "lang": {languageCode}}
	if trackName != "" {
		fetchQuery.Set("name", trackName)
	}
	body, err = d.timedTextGet(ctx, fetchQuery)
	if err != nil {
		return "", fmt.Errorf("fetch caption track: %w", err)
	}

	var doc captionDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("parse caption track: %w", err)
	}

	var parts []string
	for _, text := range doc.Texts {
		if t := strings.TrimSpace(text.Body); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoCaptions
	}

	return strings.Join(parts, " "), nil
}

func (d *implDownloader) timedTextGet(ctx context.Context, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, timedTextURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
