package downloader

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/transcriber"
	"github.com/nguyentantai21042004/ytb-summarizer/pkg/executor"
)

type implDownloader struct {
	transcriber   transcriber.Transcriber
	executor      executor.Executor
	logger        logger.Logger
	httpClient    *http.Client
	transcriptDir string
	audioDir      string
	ytdlpPath     string
}

// New creates a Downloader that fetches captions over HTTP and falls
// back to yt-dlp audio download plus speech-to-text.
func New(cfg config.DownloaderConfig, trans transcriber.Transcriber, exec executor.Executor, log logger.Logger) (Downloader, error) {
	for _, dir := range []string{cfg.TranscriptDir, cfg.AudioDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return &implDownloader{
		transcriber:   trans,
		executor:      exec,
		logger:        log,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		transcriptDir: cfg.TranscriptDir,
		audioDir:      cfg.AudioDir,
		ytdlpPath:     cfg.YtDlpPath,
	}, nil
}
