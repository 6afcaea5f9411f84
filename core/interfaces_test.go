package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExportRequestCopiesSections(t *testing.T) {
	sections := []Section{{Title: "1. Overview", Content: "body"}}
	req := NewExportRequest(sections, 91, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

	sections[0].Title = "changed"
	assert.Equal(t, "1. Overview", req.Sections[0].Title)
}

func TestAccuracyLabel(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		want     string
	}{
		{name: "integer", accuracy: 91, want: "91"},
		{name: "one decimal", accuracy: 92.4, want: "92.4"},
		{name: "rounded to one decimal", accuracy: 92.46, want: "92.5"},
		{name: "zero", accuracy: 0, want: "0"},
		{name: "hundred", accuracy: 100, want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ExportRequest{Accuracy: tt.accuracy}
			assert.Equal(t, tt.want, req.AccuracyLabel())
		})
	}
}

func TestMetadataLine(t *testing.T) {
	req := ExportRequest{Accuracy: 91, GeneratedAt: time.Date(2026, 10, 19, 15, 4, 0, 0, time.UTC)}
	assert.Equal(t, "Accuracy: 91% | Generated: 10/19/2026", req.MetadataLine("1/2/2006"))
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("odt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
