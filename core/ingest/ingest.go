// Package ingest turns input files and URLs into export sections.
//
// The loader is picked from the source: http(s) URLs are fetched and go
// down the HTML path; files are dispatched on their extension.
//
//	.json          {"accuracy": 91, "sections": [...]} or a bare section array
//	.yaml, .yml    same shape as JSON
//	.md, .markdown split into sections at the shallowest heading level
//	.html, .htm    main content extracted, converted to Markdown, then split
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/gaurav-prasanna/brdexport/core"
)

// MaxInputBytes caps the size of an input file.
const MaxInputBytes = 8 << 20

var (
	// ErrUnsupportedInput is returned for sources with no matching loader.
	ErrUnsupportedInput = errors.New("unsupported input")
	// ErrEmptyInput is returned when the source exists but holds nothing.
	ErrEmptyInput = errors.New("input is empty")
	// ErrInputTooLarge is returned for files over MaxInputBytes.
	ErrInputTooLarge = errors.New("input too large")
)

// Input is what a source provides to an export: its sections and,
// optionally, an accuracy value.
type Input struct {
	Sections []core.Section `json:"sections" yaml:"sections"`
	Accuracy *float64       `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`
}

// Loader reads sources into Inputs.
type Loader struct {
	fetcher    core.Fetcher
	extractor  core.Extractor
	normalizer core.Normalizer
}

// New creates a Loader. The fetcher is only used for URL sources.
func New(f core.Fetcher, e core.Extractor, n core.Normalizer) *Loader {
	return &Loader{fetcher: f, extractor: e, normalizer: n}
}

// Load reads a file path or http(s) URL.
func (l *Loader) Load(ctx context.Context, source string) (*Input, error) {
	if isURL(source) {
		if l.fetcher == nil {
			return nil, fmt.Errorf("%w: no fetcher for %s", ErrUnsupportedInput, source)
		}
		res, err := l.fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		return l.parseHTML([]byte(res.HTML))
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedInput, source)
	}
	if info.Size() > MaxInputBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrInputTooLarge, source, info.Size())
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return l.Parse(source, data)
}

// Parse decodes data using the loader selected by name's extension.
func (l *Loader) Parse(name string, data []byte) (*Input, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, name)
	}

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".md", ".markdown":
		return &Input{Sections: SplitMarkdown(data)}, nil
	case ".html", ".htm":
		return l.parseHTML(data)
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedInput, ext)
	}
}

func (l *Loader) parseHTML(data []byte) (*Input, error) {
	if l.extractor == nil || l.normalizer == nil {
		return nil, fmt.Errorf("%w: HTML input needs an extractor and normalizer", ErrUnsupportedInput)
	}
	content, err := l.extractor.Extract(string(data))
	if err != nil {
		return nil, fmt.Errorf("extracting content: %w", err)
	}
	md, err := l.normalizer.Normalize(content)
	if err != nil {
		return nil, fmt.Errorf("normalizing content: %w", err)
	}
	if strings.TrimSpace(md) == "" {
		return nil, ErrEmptyInput
	}
	return &Input{Sections: SplitMarkdown([]byte(md))}, nil
}

func parseJSON(data []byte) (*Input, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var sections []core.Section
		if err := dec.Decode(&sections); err != nil {
			return nil, fmt.Errorf("parsing JSON sections: %w", err)
		}
		return &Input{Sections: sections}, nil
	}

	var in Input
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("parsing JSON input: %w", err)
	}
	return &in, nil
}

func parseYAML(data []byte) (*Input, error) {
	if isYAMLSequence(data) {
		var sections []core.Section
		if err := yaml.UnmarshalWithOptions(data, &sections, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("parsing YAML sections: %w", err)
		}
		return &Input{Sections: sections}, nil
	}

	var in Input
	if err := yaml.UnmarshalWithOptions(data, &in, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("parsing YAML input: %w", err)
	}
	return &in, nil
}

// isYAMLSequence reports whether the first significant line starts a
// top-level sequence.
func isYAMLSequence(data []byte) bool {
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed == "-" || strings.HasPrefix(trimmed, "- ")
	}
	return false
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
