package downloader

import (
	"context"
	"errors"
)

// ErrNoCaptions is returned when a video has no human-authored captions
// in the requested language.
var ErrNoCaptions = errors.New("downloader: no human captions available")

// Downloader resolves video URLs to stable identifiers and obtains the
// spoken-word transcript, from captions when available or from audio
// transcription otherwise.
type Downloader interface {
	VideoID(videoURL string) (string, error)
	GetTranscript(ctx context.Context, videoURL, languageCode string) (string, error)
}
