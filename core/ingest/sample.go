package ingest

import (
	_ "embed"
	"fmt"
)

//go:embed sample_brd.json
var sampleBRD []byte

// Sample returns the built-in five-section requirements document.
func Sample() (*Input, error) {
	in, err := parseJSON(sampleBRD)
	if err != nil {
		return nil, fmt.Errorf("loading sample: %w", err)
	}
	return in, nil
}
