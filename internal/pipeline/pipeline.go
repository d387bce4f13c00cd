package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/cache"
)

var languageCodes = map[string]string{
	"english": "en",
	"french":  "fr",
}

// Summarize runs the full request: cached summary short-circuits
// everything, a cached transcript skips acquisition only, and fresh
// artifacts are written back after each expensive step. Cache failures
// never fail the request; two concurrent requests for the same uncached
// video may both compute and both write, which is a benign race since
// last write wins with equivalent values.
func (p *implPipeline) Summarize(ctx context.Context, videoURL, language string) (string, error) {
	start := time.Now()

	languageCode, ok := languageCodes[strings.ToLower(language)]
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, language)
	}

	videoID, err := p.downloader.VideoID(videoURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if summary, ok := p.cacheGet(ctx, cache.Key(videoID, cache.KindSummary)); ok {
		p.logger.Info(ctx, "Cached summary retrieved for video: %s", videoID)
		return summary, nil
	}

	transcript, err := p.obtainTranscript(ctx, videoURL, videoID, languageCode)
	if err != nil {
		return "", err
	}

	summary, err := p.summarizer.Summarize(ctx, transcript, languageCode)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarization, err)
	}
	p.cacheSet(ctx, cache.Key(videoID, cache.KindSummary), summary)

	p.logger.Info(ctx, "Total time to process request for %s: %.2fs", videoID, time.Since(start).Seconds())
	return summary, nil
}

// obtainTranscript returns the cached transcript if one exists,
// otherwise acquires it and stores it.
func (p *implPipeline) obtainTranscript(ctx context.Context, videoURL, videoID, languageCode string) (string, error) {
	key := cache.Key(videoID, cache.KindTranscript)

	if transcript, ok := p.cacheGet(ctx, key); ok {
		p.logger.Info(ctx, "Cached transcript retrieved for video: %s", videoID)
		return transcript, nil
	}

	transcript, err := p.downloader.GetTranscript(ctx, videoURL, languageCode)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	p.cacheSet(ctx, key, transcript)

	return transcript, nil
}

// cacheGet treats every failure as a miss
func (p *implPipeline) cacheGet(ctx context.Context, key string) (string, bool) {
	value, err := p.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			p.logger.Warn(ctx, "Cache get failed for %s, treating as miss: %v", key, err)
		}
		return "", false
	}
	return value, true
}

// cacheSet is fire-and-forget: a failed write is surfaced to operators
// but never fails the request.
func (p *implPipeline) cacheSet(ctx context.Context, key, value string) {
	if err := p.cache.Set(ctx, key, value); err != nil {
		p.logger.Warn(ctx, "Cache set failed for %s: %v", key, err)
	}
}
