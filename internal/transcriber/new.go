package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
	"github.com/nguyentantai21042004/ytb-summarizer/pkg/executor"
)

// New creates the Transcriber selected by transcriber.backend
func New(cfg config.TranscriberConfig, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Backend {
	case "whisper":
		return &whisperTranscriber{
			modelPath:  cfg.WhisperModel,
			binaryPath: cfg.WhisperBinary,
			threads:    cfg.WhisperThreads,
			executor:   exec,
			logger:     log,
		}, nil
	case "assemblyai":
		return newAssemblyAITranscriber(cfg.AssemblyAIKey, log), nil
	default:
		return nil, fmt.Errorf("unknown transcriber backend %q", cfg.Backend)
	}
}
