package summarizer

import (
	"regexp"
	"strings"
)

var paragraphSep = regexp.MustCompile(`\n{2,}`)

// splitChunks splits a transcript into ordered chunks of at most
// maxChunkSize characters. Paragraphs (runs of two or more newlines) are
// never split: a paragraph that alone exceeds the bound becomes its own
// oversized chunk, trading a strict size limit for semantic coherence.
// Output is a pure function of the inputs.
func splitChunks(transcript string, maxChunkSize int) []string {
	paragraphs := paragraphSep.Split(transcript, -1)

	var chunks []string
	var current strings.Builder

	for _, paragraph := range paragraphs {
		if current.Len()+len(paragraph)+1 <= maxChunkSize {
			current.WriteString(paragraph)
			current.WriteString("\n\n")
		} else {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
			current.WriteString(paragraph)
			current.WriteString("\n\n")
		}
	}

	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	filtered := chunks[:0]
	for _, chunk := range chunks {
		if chunk != "" {
			filtered = append(filtered, chunk)
		}
	}

	return filtered
}
