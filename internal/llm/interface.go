package llm

import "context"

// Client defines a completion API that returns JSON-formatted output.
// CompleteJSON sends one system instruction plus user content and returns
// the raw generated text, which callers are expected to parse themselves.
type Client interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}
