package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
)

// assemblyaiTranscriber uploads the audio file to the AssemblyAI API
// and waits for the finished transcript.
type assemblyaiTranscriber struct {
	client *aai.Client
	logger logger.Logger
}

func newAssemblyAITranscriber(apiKey string, log logger.Logger) *assemblyaiTranscriber {
	return &assemblyaiTranscriber{
		client: aai.NewClient(apiKey),
		logger: log,
	}
}

func (t *assemblyaiTranscriber) Transcribe(ctx context.Context, audioFile, languageCode string) (string, error) {
	file, err := os.Open(audioFile)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	punctuate := true
	formatText := true
	params := &aai.TranscriptOptionalParams{
		LanguageCode: aai.TranscriptLanguageCode(languageCode),
		Punctuate:    &punctuate,
		FormatText:   &formatText,
	}

	start := time.Now()
	transcript, err := t.client.Transcripts.TranscribeFromReader(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcribe: %w", err)
	}
	t.logger.Info(ctx, "Transcription completed in %s", time.Since(start))

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai transcription failed: %s", msg)
	}

	if transcript.Text == nil {
		return "", fmt.Errorf("assemblyai returned empty transcript")
	}

	return strings.TrimSpace(*transcript.Text), nil
}
