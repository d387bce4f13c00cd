package pipeline

import (
	"context"
	"errors"
)

// Stage-level failure categories surfaced to callers. Everything that
// goes wrong inside a stage is wrapped in exactly one of these.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrAcquisition   = errors.New("could not obtain transcript")
	ErrSummarization = errors.New("summarization failed")
)

// Pipeline is the single operation exposed to callers: resolve a video
// URL, obtain its transcript, and return a hierarchical summary, with
// cached results short-circuiting the expensive steps.
type Pipeline interface {
	Summarize(ctx context.Context, videoURL, language string) (string, error)
}
