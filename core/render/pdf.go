// Package render turns export requests into finished documents.
//
// The PDF renderer lays out the request with the paginator, using gofpdf font metrics for
// wrapping, then draws each positioned item. Page breaks come from the
// layout, so gofpdf's automatic page breaking is switched off.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/config"
	"github.com/gaurav-prasanna/brdexport/core/paginate"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders export requests as paginated PDF documents.
type PDFRenderer struct {
	cfg      config.Config
	compress bool
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(cfg config.Config) *PDFRenderer {
	return &PDFRenderer{cfg: cfg, compress: true}
}

// Render converts the request into PDF bytes.
func (r *PDFRenderer) Render(req core.ExportRequest) ([]byte, error) {
	data, _, err := r.RenderLayout(req)
	return data, err
}

// RenderLayout renders the request and also returns the page layout it drew.
func (r *PDFRenderer) RenderLayout(req core.ExportRequest) ([]byte, paginate.Layout, error) {
	f := r.cfg.Flat
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: f.PageWidth, Ht: f.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.compress)
	// Equal requests must produce equal bytes: resources in sorted order
	// and both info dates pinned to the generation time.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(req.GeneratedAt)
	pdf.SetModificationDate(req.GeneratedAt)
	pdf.SetTitle(r.cfg.Document.Title, true)
	pdf.SetCreator("brdexport", true)

	// Core fonts are cp1252; translate before measuring and drawing.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(f.FontFamily, "", f.BodySize)
	measure := paginate.MeasureFunc(func(s string) float64 {
		return pdf.GetStringWidth(tr(s))
	})
	layout := paginate.New(r.cfg, measure).Paginate(req)

	for _, page := range layout.Pages {
		pdf.AddPage()
		for _, it := range page.Items {
			drawItem(pdf, f, tr(it.Text), it)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, layout, fmt.Errorf("%w: %w", core.ErrSerialization, err)
	}
	return buf.Bytes(), layout, nil
}

// Format returns the PDF format tag.
func (r *PDFRenderer) Format() core.Format {
	return core.FormatPDF
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// MIMEType returns the media type for PDF output.
func (r *PDFRenderer) MIMEType() string {
	return "application/pdf"
}

// drawItem sets the font and colour for the item's kind and draws it.
func drawItem(pdf *gofpdf.Fpdf, f config.FlatConfig, text string, it paginate.Item) {
	switch it.Kind {
	case paginate.KindTitle:
		pdf.SetFont(f.FontFamily, "B", f.TitleSize)
		pdf.SetTextColor(0, 0, 0)
	case paginate.KindSubtitle, paginate.KindMeta:
		pdf.SetFont(f.FontFamily, "", f.SubtitleSize)
		pdf.SetTextColor(f.MutedGray, f.MutedGray, f.MutedGray)
	case paginate.KindRule:
		pdf.SetDrawColor(f.RuleGray, f.RuleGray, f.RuleGray)
		pdf.Line(it.X, it.Y, it.X2, it.Y)
		return
	case paginate.KindHeading:
		pdf.SetFont(f.FontFamily, "B", f.HeadingSize)
		pdf.SetTextColor(0, 0, 0)
	default:
		pdf.SetFont(f.FontFamily, "", f.BodySize)
		pdf.SetTextColor(0, 0, 0)
	}
	if text == "" {
		return
	}
	pdf.Text(it.X, it.Y, text)
}
