package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/compose"
	"github.com/gaurav-prasanna/brdexport/core/config"
)

// DocumentJSON is the structured export: header metadata, parsed sections
// and element counts. Nothing business-specific is inferred from content.
type DocumentJSON struct {
	Metadata  DocumentMetadata      `json:"metadata"`
	Sections  []compose.SectionView `json:"sections"`
	Structure DocumentStructure     `json:"structure"`
}

// DocumentMetadata mirrors the title block of the rendered documents.
type DocumentMetadata struct {
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	Accuracy      float64 `json:"accuracy"`
	AccuracyLabel string  `json:"accuracy_label"`
	GeneratedAt   string  `json:"generated_at"`
}

// DocumentStructure counts parsed elements across all sections.
type DocumentStructure struct {
	Sections   int `json:"sections"`
	Paragraphs int `json:"paragraphs"`
	BoldRuns   int `json:"bold_runs"`
	Tables     int `json:"tables"`
	TableRows  int `json:"table_rows"`
}

// JSONRenderer produces the structured JSON export.
type JSONRenderer struct {
	doc config.DocumentConfig
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(cfg config.Config) *JSONRenderer {
	return &JSONRenderer{doc: cfg.Document}
}

// Render converts the request into indented JSON.
func (r *JSONRenderer) Render(req core.ExportRequest) ([]byte, error) {
	out := DocumentJSON{
		Metadata: DocumentMetadata{
			Title:         r.doc.Title,
			Subtitle:      r.doc.Subtitle,
			Accuracy:      req.Accuracy,
			AccuracyLabel: req.AccuracyLabel(),
			GeneratedAt:   req.GeneratedAt.UTC().Format(time.RFC3339),
		},
		Sections: make([]compose.SectionView, 0, len(req.Sections)),
	}

	for _, s := range req.Sections {
		view := compose.ParseSection(s)
		out.Sections = append(out.Sections, view)
		countStructure(&out.Structure, view)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling JSON: %w", core.ErrSerialization, err)
	}
	return data, nil
}

// Format returns the JSON format tag.
func (r *JSONRenderer) Format() core.Format {
	return core.FormatJSON
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// MIMEType returns the media type for JSON output.
func (r *JSONRenderer) MIMEType() string {
	return "application/json"
}

func countStructure(st *DocumentStructure, view compose.SectionView) {
	st.Sections++
	st.Paragraphs += len(view.Paragraphs)
	for _, runs := range view.Paragraphs {
		for _, run := range runs {
			if run.Bold {
				st.BoldRuns++
			}
		}
	}
	if view.Table != nil {
		st.Tables++
		st.TableRows += len(view.Table.Rows)
	}
}
