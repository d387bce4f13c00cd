package summarizer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// StructuredResult is the parsed output of one LLM call. The scratchpad
// is the model's working notes and is never used downstream, but its
// presence is part of the output contract.
type StructuredResult struct {
	Scratchpad string
	Summary    string
}

// parseStructuredResult parses raw LLM output in two stages: a strict
// JSON parse first, then a lenient structural repair that tolerates
// missing quotes, trailing commas and truncation. An error means even
// the repaired payload did not validate.
func parseStructuredResult(raw string) (StructuredResult, error) {
	result, err := parseStrict(raw)
	if err == nil {
		return result, nil
	}

	return repairStructuredResult(raw)
}

// repairStructuredResult runs the lenient repair parser over a
// near-valid JSON payload and revalidates it. Prose around the object
// (anything before the first brace or after the last) is stripped first.
func repairStructuredResult(raw string) (StructuredResult, error) {
	repaired, err := jsonrepair.JSONRepair(trimToObject(raw))
	if err != nil {
		return StructuredResult{}, fmt.Errorf("repair payload: %w", err)
	}

	result, err := parseStrict(repaired)
	if err != nil {
		return StructuredResult{}, fmt.Errorf("validate repaired payload: %w", err)
	}

	return result, nil
}

// trimToObject cuts the text down to the outermost brace pair. If no
// opening brace exists the input is returned unchanged; an unclosed
// object keeps everything from the first brace so truncated payloads
// stay repairable.
func trimToObject(raw string) string {
	start := strings.Index(raw, "{")
	if start < 0 {
		return raw
	}
	end := strings.LastIndex(raw, "}")
	if end < start {
		return raw[start:]
	}
	return raw[start : end+1]
}

// parseStrict requires a single JSON object with both "scratchpad" and
// "summary" present as strings; trailing garbage after the object is
// rejected. The fields may be empty, but never absent.
func parseStrict(raw string) (StructuredResult, error) {
	var aux struct {
		Scratchpad *string `json:"scratchpad"`
		Summary    *string `json:"summary"`
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	if err := dec.Decode(&aux); err != nil {
		return StructuredResult{}, fmt.Errorf("decode result: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return StructuredResult{}, fmt.Errorf("trailing data after JSON object")
	}

	if aux.Scratchpad == nil {
		return StructuredResult{}, fmt.Errorf("missing scratchpad field")
	}
	if aux.Summary == nil {
		return StructuredResult{}, fmt.Errorf("missing summary field")
	}

	return StructuredResult{Scratchpad: *aux.Scratchpad, Summary: *aux.Summary}, nil
}
