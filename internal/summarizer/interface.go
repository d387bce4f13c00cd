package summarizer

import "context"

// Summarizer turns a full transcript into one hierarchical markdown
// summary. The language code is carried for observability only; the
// model answers in the language of the transcript itself.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, language string) (string, error)
}
