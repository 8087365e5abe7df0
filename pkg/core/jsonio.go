package core

import (
	"encoding/json"
	"io"
)

// MarshalSummary pretty-prints a summary as JSON for humans or pipelines.
func MarshalSummary(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// UnmarshalSummary decodes a summary written by MarshalSummary, useful
// for ingestion tests.
func UnmarshalSummary(r io.Reader) (Summary, error) {
	var s Summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Summary{}, err
	}
	return s, nil
}
