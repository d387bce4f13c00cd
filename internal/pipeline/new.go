package pipeline

import (
	"github.com/nguyentantai21042004/ytb-summarizer/internal/cache"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/downloader"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/summarizer"
)

type implPipeline struct {
	cache      cache.Cache
	downloader downloader.Downloader
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a Pipeline instance
func New(c cache.Cache, d downloader.Downloader, s summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cache:      c,
		downloader: d,
		summarizer: s,
		logger:     log,
	}
}
