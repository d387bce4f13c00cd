package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/llm"
)

// Summarize splits the transcript, summarizes every chunk concurrently,
// then merges the chunk summaries into the final document. Merge input
// order is always chunk order, regardless of which call returns first.
// If any chunk fails irrecoverably the whole invocation fails.
func (s *implSummarizer) Summarize(ctx context.Context, transcript, language string) (string, error) {
	chunks := splitChunks(transcript, s.maxChunkSize)
	s.logger.Info(ctx, "Summarizing %d chunks separately (language: %s)", len(chunks), language)

	summaries, err := s.summarizeChunks(ctx, chunks)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Merging %d chunk summaries", len(summaries))

	final, err := s.mergeSummaries(ctx, summaries)
	if err != nil {
		return "", err
	}

	return final, nil
}

// summarizeChunks fans out one call per chunk, bounded by the
// concurrency cap, and collects results in chunk order.
func (s *implSummarizer) summarizeChunks(ctx context.Context, chunks []string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	summaries := make([]string, len(chunks))
	errs := make([]error, len(chunks))
	sem := newSemaphore(s.maxConcurrent)

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()

			if err := sem.acquire(ctx); err != nil {
				errs[i] = err
				return
			}
			defer sem.release()

			summary, err := s.summarizeChunk(ctx, chunk)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			summaries[i] = summary
		}(i, chunk)
	}
	wg.Wait()

	// Prefer the failure that triggered cancellation over the
	// context.Canceled errors of its siblings.
	var firstErr error
	for i, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("summarize chunk %d: %w", i, err)
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("summarize chunk %d: %w", i, err)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return summaries, nil
}

// summarizeChunk asks the model for a structured summary of one chunk
func (s *implSummarizer) summarizeChunk(ctx context.Context, chunk string) (string, error) {
	user := "<chunk>\n\n" + chunk + "\n\n</chunk>"

	result, err := s.completeStructured(ctx, chunkSummarizerPrompt, user)
	if err != nil {
		return "", err
	}

	return result.Summary, nil
}

// mergeSummaries combines the ordered chunk summaries into the final
// titled, sub-sectioned document.
func (s *implSummarizer) mergeSummaries(ctx context.Context, summaries []string) (string, error) {
	user := "<summaries>\n\n" + strings.Join(summaries, "\n\n") + "\n\n</summaries>"

	result, err := s.completeStructured(ctx, summariesMergerPrompt, user)
	if err != nil {
		return "", err
	}

	return result.Summary, nil
}

// completeStructured issues one LLM call and applies the recovery
// protocol: strict parse of the response, structural repair of a
// bad-request partial payload, or structural repair of malformed output.
// Anything past repair is a hard error.
func (s *implSummarizer) completeStructured(ctx context.Context, system, user string) (StructuredResult, error) {
	text, err := s.llm.CompleteJSON(ctx, system, user)
	if err != nil {
		var badReq *llm.BadRequestError
		if errors.As(err, &badReq) && badReq.FailedGeneration != "" {
			s.logger.Warn(ctx, "LLM rejected request with partial generation, attempting repair")
			result, repairErr := repairStructuredResult(badReq.FailedGeneration)
			if repairErr != nil {
				return StructuredResult{}, fmt.Errorf("repair failed generation: %w", repairErr)
			}
			return result, nil
		}
		return StructuredResult{}, fmt.Errorf("llm completion: %w", err)
	}

	result, err := parseStructuredResult(text)
	if err != nil {
		return StructuredResult{}, fmt.Errorf("parse llm response: %w", err)
	}

	return result, nil
}
