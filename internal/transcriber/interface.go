package transcriber

import "context"

// Transcriber converts an audio file into plain text. Implementations
// are interchangeable and selected at process configuration time; the
// pipeline never depends on a specific backend.
type Transcriber interface {
	Transcribe(ctx context.Context, audioFile, languageCode string) (string, error)
}
