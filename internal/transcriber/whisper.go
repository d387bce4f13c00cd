package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
	"github.com/nguyentantai21042004/ytb-summarizer/pkg/executor"
)

// whisperTranscriber runs a local whisper.cpp binary and reads back the
// plain-text output file it produces.
type whisperTranscriber struct {
	modelPath  string
	binaryPath string
	threads    int
	executor   executor.Executor
	logger     logger.Logger
}

func (t *whisperTranscriber) Transcribe(ctx context.Context, audioFile, languageCode string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioFile, filepath.Ext(audioFile))

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.threads, audioFile)
	start := time.Now()

	// -otxt: plain text output
	// -l: force language (prevents hallucination)
	// -ml/-mc 0: no segment or context limits, better for long audio
	args := []string{
		"-m", t.modelPath,
		"-f", audioFile,
		"-otxt",
		"-l", languageCode,
		"-t", strconv.Itoa(t.threads),
		"-ml", "0",
		"-mc", "0",
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.binaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	defer os.Remove(txtPath)

	t.logger.Info(ctx, "Transcription completed in %s", time.Since(start))
	return strings.TrimSpace(string(data)), nil
}
