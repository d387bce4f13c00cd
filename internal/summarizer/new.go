package summarizer

import (
	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/llm"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
)

type implSummarizer struct {
	llm           llm.Client
	logger        logger.Logger
	maxChunkSize  int
	maxConcurrent int
}

// New creates a Summarizer that fans chunk summaries out over the given
// LLM client, at most cfg.MaxConcurrent calls at a time.
func New(cfg config.SummarizerConfig, client llm.Client, log logger.Logger) Summarizer {
	return &implSummarizer{
		llm:           client,
		logger:        log,
		maxChunkSize:  cfg.MaxChunkSize,
		maxConcurrent: cfg.MaxConcurrent,
	}
}
