package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/compose"
	"github.com/gaurav-prasanna/brdexport/core/config"
	"github.com/gaurav-prasanna/brdexport/core/docx"
)

// DOCXRenderer renders export requests as word-processor documents. It
// composes the styled tree and hands it to an injected encoder.
type DOCXRenderer struct {
	composer *compose.Composer
	encoder  compose.Encoder
}

// NewDOCXRenderer creates a DOCXRenderer. A nil encoder selects the
// built-in .docx encoder.
func NewDOCXRenderer(cfg config.Config, enc compose.Encoder) *DOCXRenderer {
	if enc == nil {
		enc = docx.NewEncoder()
	}
	return &DOCXRenderer{composer: compose.New(cfg), encoder: enc}
}

// Render composes the document tree and serializes it.
func (r *DOCXRenderer) Render(req core.ExportRequest) ([]byte, error) {
	doc := r.composer.Compose(req)

	var buf bytes.Buffer
	if err := r.encoder.Encode(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// Format returns the DOCX format tag.
func (r *DOCXRenderer) Format() core.Format {
	return core.FormatDOCX
}

// Extension returns the file extension for DOCX output.
func (r *DOCXRenderer) Extension() string {
	return ".docx"
}

// MIMEType returns the media type for DOCX output.
func (r *DOCXRenderer) MIMEType() string {
	return docx.MIMEType
}
