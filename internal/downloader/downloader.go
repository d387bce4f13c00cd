package downloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// GetTranscript obtains the spoken-word transcript for a video: first
// from a human-authored caption track, otherwise by downloading the
// audio and transcribing it. The transcript is persisted to
// {transcript_dir}/{videoID}_{lang}.txt either way.
func (d *implDownloader) GetTranscript(ctx context.Context, videoURL, languageCode string) (string, error) {
	videoID, err := d.VideoID(videoURL)
	if err != nil {
		return "", err
	}

	transcript, err := d.fetchCaptions(ctx, videoID, languageCode)
	switch {
	case err == nil:
		d.logger.Info(ctx, "Human transcript downloaded for video: %s", videoID)
	case errors.Is(err, ErrNoCaptions):
		d.logger.Info(ctx, "No human captions for video %s, falling back to audio transcription", videoID)
		transcript, err = d.transcribeAudio(ctx, videoURL, videoID, languageCode)
		if err != nil {
			return "", err
		}
	default:
		return "", err
	}

	if err := d.saveTranscript(transcript, videoID, languageCode); err != nil {
		d.logger.Warn(ctx, "Failed to save transcript for %s: %v", videoID, err)
	}

	return transcript, nil
}

// transcribeAudio downloads the audio track with yt-dlp, runs the
// configured speech-to-text backend, then deletes the audio file.
func (d *implDownloader) transcribeAudio(ctx context.Context, videoURL, videoID, languageCode string) (string, error) {
	audioPath := filepath.Join(d.audioDir, videoID+".mp3")

	args := []string{
		"-x",
		"--audio-format", "mp3",
		"-o", filepath.Join(d.audioDir, videoID+".%(ext)s"),
		"--no-playlist",
		videoURL,
	}
	if _, err := d.executor.Execute(ctx, d.ytdlpPath, args...); err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}
	d.logger.Info(ctx, "Audio downloaded for video: %s", videoID)
	defer d.cleanupAudio(ctx, audioPath)

	d.logger.Info(ctx, "Transcribing audio...")
	transcript, err := d.transcriber.Transcribe(ctx, audioPath, languageCode)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	d.logger.Info(ctx, "Transcription complete.")

	return transcript, nil
}

func (d *implDownloader) saveTranscript(transcript, videoID, languageCode string) error {
	path := filepath.Join(d.transcriptDir, fmt.Sprintf("%s_%s.txt", videoID, languageCode))
	if err := os.WriteFile(path, []byte(transcript), 0644); err != nil {
		return fmt.Errorf("write transcript file: %w", err)
	}
	return nil
}

func (d *implDownloader) cleanupAudio(ctx context.Context, audioPath string) {
	if err := os.Remove(audioPath); err != nil {
		d.logger.Warn(ctx, "Failed to remove audio file %s: %v", audioPath, err)
	} else {
		d.logger.Debug(ctx, "Audio file deleted: %s", audioPath)
	}
}
