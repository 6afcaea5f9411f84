package verify

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotDOCX is returned when the archive has no word/document.xml part.
var ErrNotDOCX = errors.New("word/document.xml not found in archive")

// DOCXSummary is what a reader sees in a .docx body.
type DOCXSummary struct {
	Paragraphs []string // every paragraph, including table cell paragraphs
	BoldRuns   []string
	Tables     int
}

// InspectDOCX reads word/document.xml from a .docx archive.
func InspectDOCX(data []byte) (*DOCXSummary, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, ErrNotDOCX
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	return scanDocument(rc)
}

func scanDocument(r io.Reader) (*DOCXSummary, error) {
	summary := &DOCXSummary{}
	decoder := xml.NewDecoder(r)

	var (
		para, run       strings.Builder
		inText, runBold bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return summary, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para.Reset()
			case "r":
				run.Reset()
				runBold = false
			case "b":
				runBold = onOff(t)
			case "t":
				inText = true
			case "tbl":
				summary.Tables++
			}
		case xml.CharData:
			if inText {
				para.Write(t)
				run.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "r":
				if runBold {
					summary.BoldRuns = append(summary.BoldRuns, run.String())
				}
			case "p":
				summary.Paragraphs = append(summary.Paragraphs, para.String())
			}
		}
	}
}

// onOff reads a toggle property; a missing w:val means on.
func onOff(el xml.StartElement) bool {
	for _, a := range el.Attr {
		if a.Name.Local == "val" {
			switch a.Value {
			case "false", "0", "off":
				return false
			}
		}
	}
	return true
}
