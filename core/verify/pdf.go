// Package verify re-reads emitted artifacts so the CLI and tests can check
// what a reader would actually get: PDF page counts via pdfcpu and DOCX
// paragraph text via the package's document part.
package verify

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// PDFInfo describes a parsed PDF.
type PDFInfo struct {
	PageCount int
}

// InspectPDF parses and validates a PDF held in memory.
func InspectPDF(data []byte) (*PDFInfo, error) {
	// pdfcpu otherwise creates a config directory under the user's home.
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}
	return &PDFInfo{PageCount: ctx.PageCount}, nil
}
