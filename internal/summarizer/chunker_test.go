package summarizer

import (
	"strings"
	"testing"
)

func TestSplitChunksSingleChunk(t *testing.T) {
	transcript := "Paragraph one.\n\nParagraph two."

	chunks := splitChunks(transcript, 1000)

	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0] != "Paragraph one.\n\nParagraph two." {
		t.Errorf("chunk = %q", chunks[0])
	}
}

func TestSplitChunksThreeParagraphs(t *testing.T) {
	// Three 600-char paragraphs with a 1000-char bound: no pairing fits
	p := strings.Repeat("a", 600)
	transcript := p + "\n\n" + p + "\n\n" + p

	chunks := splitChunks(transcript, 1000)

	if len(chunks) != 3 {
		t.Fatalf("len(chunks) = %d, want 3", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk != p {
			t.Errorf("chunk %d = %q, want single paragraph", i, chunk[:20])
		}
	}
}

func TestSplitChunksOversizedParagraph(t *testing.T) {
	big := strings.Repeat("b", 2500)
	transcript := "short intro\n\n" + big + "\n\nshort outro"

	chunks := splitChunks(transcript, 1000)

	found := false
	for _, chunk := range chunks {
		if chunk == big {
			found = true
		}
	}
	if !found {
		t.Error("oversized paragraph was split or dropped, want it kept whole")
	}
}

func TestSplitChunksNoEmptyChunks(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
	}{
		{"empty input", ""},
		{"only blank lines", "\n\n\n\n\n"},
		{"blank paragraphs between text", "one\n\n\n\n\n\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, chunk := range splitChunks(tt.transcript, 100) {
				if chunk == "" {
					t.Errorf("chunk %d is empty", i)
				}
			}
		})
	}
}

func TestSplitChunksPreservesAllParagraphs(t *testing.T) {
	transcript := "alpha\n\nbravo\n\ncharlie\n\ndelta\n\necho"

	chunks := splitChunks(transcript, 14)
	joined := strings.Join(chunks, "\n\n")

	for _, para := range []string{"alpha", "bravo", "charlie", "delta", "echo"} {
		if count := strings.Count(joined, para); count != 1 {
			t.Errorf("paragraph %q appears %d times, want 1", para, count)
		}
	}
}

func TestSplitChunksDeterministic(t *testing.T) {
	transcript := "one\n\ntwo\n\nthree\n\nfour"

	first := splitChunks(transcript, 10)
	second := splitChunks(transcript, 10)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestSplitChunksRespectsBound(t *testing.T) {
	// Paragraphs small enough to combine must not exceed the bound
	transcript := strings.Repeat("word ", 50) + "\n\n" + strings.Repeat("text ", 50) + "\n\n" + strings.Repeat("more ", 50)

	for _, chunk := range splitChunks(transcript, 300) {
		if len(chunk) > 300 {
			t.Errorf("chunk of %d chars exceeds bound without containing an oversized paragraph", len(chunk))
		}
	}
}
