package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/cache"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
)

// fakeCache is an in-memory Cache with optional forced failures
type fakeCache struct {
	mu      sync.Mutex
	data    map[string]string
	failGet bool
	failSet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return "", errors.New("cache down")
	}
	value, ok := f.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return value, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return errors.New("cache down")
	}
	f.data[key] = value
	return nil
}

func (f *fakeCache) Flush(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = map[string]string{}
	return nil
}

func (f *fakeCache) Close() error { return nil }

// fakeDownloader counts acquisition calls
type fakeDownloader struct {
	transcript string
	fetchCalls int
	fetchErr   error
	videoIDErr error
}

func (f *fakeDownloader) VideoID(videoURL string) (string, error) {
	if f.videoIDErr != nil {
		return "", f.videoIDErr
	}
	return "abc123def45", nil
}

func (f *fakeDownloader) GetTranscript(ctx context.Context, videoURL, languageCode string) (string, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return "", f.fetchErr
	}
	return f.transcript, nil
}

// fakeSummarizer counts summarization calls
type fakeSummarizer struct {
	summary string
	calls   int
	err     error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript, language string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

func TestSummarizeCachedSummaryShortCircuits(t *testing.T) {
	c := newFakeCache()
	c.data["abc123def45_summary"] = "# Cached Summary"
	dl := &fakeDownloader{transcript: "text"}
	sum := &fakeSummarizer{summary: "# Fresh"}

	p := New(c, dl, sum, logger.New("error"))

	got, err := p.Summarize(context.Background(), "https://www.youtube.com/watch?v=abc123def45", "English")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "# Cached Summary" {
		t.Errorf("summary = %q, want cached value verbatim", got)
	}
	if dl.fetchCalls != 0 {
		t.Errorf("acquisition calls = %d, want 0", dl.fetchCalls)
	}
	if sum.calls != 0 {
		t.Errorf("summarizer calls = %d, want 0", sum.calls)
	}
}

func TestSummarizeCachedTranscriptStillSummarizes(t *testing.T) {
	c := newFakeCache()
	c.data["abc123def45_transcript"] = "cached transcript"
	dl := &fakeDownloader{transcript: "fresh transcript"}
	sum := &fakeSummarizer{summary: "# Summary"}

	p := New(c, dl, sum, logger.New("error"))

	got, err := p.Summarize(context.Background(), "https://youtu.be/abc123def45", "english")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "# Summary" {
		t.Errorf("summary = %q", got)
	}
	if dl.fetchCalls != 0 {
		t.Errorf("acquisition calls = %d, want 0 with cached transcript", dl.fetchCalls)
	}
	if sum.calls != 1 {
		t.Errorf("summarizer calls = %d, want 1", sum.calls)
	}
}

func TestSummarizePopulatesCache(t *testing.T) {
	c := newFakeCache()
	dl := &fakeDownloader{transcript: "the transcript"}
	sum := &fakeSummarizer{summary: "# Summary"}

	p := New(c, dl, sum, logger.New("error"))

	if _, err := p.Summarize(context.Background(), "https://youtu.be/abc123def45", "english"); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if c.data["abc123def45_transcript"] != "the transcript" {
		t.Errorf("transcript cache entry = %q", c.data["abc123def45_transcript"])
	}
	if c.data["abc123def45_summary"] != "# Summary" {
		t.Errorf("summary cache entry = %q", c.data["abc123def45_summary"])
	}

	// Second identical request: served from cache, no new work
	got, err := p.Summarize(context.Background(), "https://youtu.be/abc123def45", "english")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "# Summary" {
		t.Errorf("summary = %q", got)
	}
	if dl.fetchCalls != 1 {
		t.Errorf("acquisition calls = %d, want 1", dl.fetchCalls)
	}
	if sum.calls != 1 {
		t.Errorf("summarizer calls = %d, want 1", sum.calls)
	}
}

func TestSummarizeCacheFailuresDoNotFailRequest(t *testing.T) {
	c := newFakeCache()
	c.failGet = true
	c.failSet = true
	dl := &fakeDownloader{transcript: "text"}
	sum := &fakeSummarizer{summary: "# Summary"}

	p := New(c, dl, sum, logger.New("error"))

	got, err := p.Summarize(context.Background(), "https://youtu.be/abc123def45", "english")
	if err != nil {
		t.Fatalf("Summarize() error = %v, cache failures must not fail the request", err)
	}
	if got != "# Summary" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummarizeUnsupportedLanguage(t *testing.T) {
	p := New(newFakeCache(), &fakeDownloader{}, &fakeSummarizer{}, logger.New("error"))

	_, err := p.Summarize(context.Background(), "https://youtu.be/abc123def45", "german")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSummarizeLanguageCaseInsensitive(t *testing.T) {
	for _, language := range []string{"English", "ENGLISH", "french", "French"} {
		t.Run(language, func(t *testing.T) {
			p := New(newFakeCache(), &fakeDownloader{transcript: "t"}, &fakeSummarizer{summary: "s"}, logger.New("error"))
			if _, err := p.Summarize(context.Background(), "https://youtu.be/abc123def45", language); err != nil {
				t.Errorf("Summarize(%q) error = %v", language, err)
			}
		})
	}
}

func TestSummarizeInvalidURL(t *testing.T) {
	dl := &fakeDownloader{videoIDErr: errors.New("no video ID found")}
	p := New(newFakeCache(), dl, &fakeSummarizer{}, logger.New("error"))

	_, err := p.Summarize(context.Background(), "https://example.com/clip", "english")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSummarizeAcquisitionFailure(t *testing.T) {
	dl := &fakeDownloader{fetchErr: fmt.Errorf("yt-dlp exploded")}
	p := New(newFakeCache(), dl, &fakeSummarizer{}, logger.New("error"))

	_, err := p.Summarize(context.Background(), "https://youtu.be/abc123def45", "english")
	if !errors.Is(err, ErrAcquisition) {
		t.Errorf("error = %v, want ErrAcquisition", err)
	}
}

func TestSummarizeSummarizationFailure(t *testing.T) {
	c := newFakeCache()
	dl := &fakeDownloader{transcript: "text"}
	sum := &fakeSummarizer{err: errors.New("all chunks failed")}

	p := New(c, dl, sum, logger.New("error"))

	_, err := p.Summarize(context.Background(), "https://youtu.be/abc123def45", "english")
	if !errors.Is(err, ErrSummarization) {
		t.Errorf("error = %v, want ErrSummarization", err)
	}

	// Transcript was acquired before the failure and must still be cached
	if c.data["abc123def45_transcript"] != "text" {
		t.Errorf("transcript not cached after summarization failure")
	}
	if _, ok := c.data["abc123def45_summary"]; ok {
		t.Error("summary cached despite failure")
	}
}
