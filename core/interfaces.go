// Package core defines the export pipeline types and interfaces for brdexport.
// Each stage of the pipeline is a clean, testable interface:
// ingest → {paginate | compose} → render → emit.
package core

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Section is one titled block of source content.
// Content is newline-separated and may carry **bold** spans and |table| rows.
type Section struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// ExportRequest is the full input of one export call.
type ExportRequest struct {
	Sections    []Section
	Accuracy    float64
	GeneratedAt time.Time
}

// NewExportRequest builds a request that owns its own copy of sections.
func NewExportRequest(sections []Section, accuracy float64, now time.Time) ExportRequest {
	owned := make([]Section, len(sections))
	copy(owned, sections)
	return ExportRequest{
		Sections:    owned,
		Accuracy:    accuracy,
		GeneratedAt: now,
	}
}

// AccuracyLabel formats the accuracy with at most one decimal (91, 92.4).
func (r ExportRequest) AccuracyLabel() string {
	rounded := math.Round(r.Accuracy*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// MetadataLine returns the "Accuracy: N% | Generated: DATE" header line.
func (r ExportRequest) MetadataLine(dateLayout string) string {
	return fmt.Sprintf("Accuracy: %s%% | Generated: %s", r.AccuracyLabel(), r.GeneratedAt.Format(dateLayout))
}

// Format identifies an output document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatJSON Format = "json"
)

// Formats lists every supported output format in emission order.
var Formats = []Format{FormatPDF, FormatDOCX, FormatJSON}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Artifact is a finished document waiting to be emitted.
type Artifact struct {
	Data     []byte
	Filename string
	Format   Format
	MIMEType string
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts an export request into a finished document.
type Renderer interface {
	Render(req ExportRequest) ([]byte, error)
	Format() Format
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
	MIMEType() string
}
