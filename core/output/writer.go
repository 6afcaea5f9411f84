// Package output writes finished artifacts to disk.
// Every format gets one fixed filename, <base><ext> (e.g. BRD_Document.pdf),
// and files are written to a temp name first then renamed into place, so a
// failed export never leaves a partial document behind.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/brdexport/core"
)

// ErrEmptyArtifact is returned when asked to emit an artifact with no data.
var ErrEmptyArtifact = errors.New("artifact has no data")

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// NewArtifact packages rendered bytes with the renderer's format tag and
// the fixed filename for that format.
func NewArtifact(r core.Renderer, data []byte, baseName string) *core.Artifact {
	return &core.Artifact{
		Data:     data,
		Filename: Filename(baseName, r.Extension()),
		Format:   r.Format(),
		MIMEType: r.MIMEType(),
	}
}

// Filename joins a base name and extension, replacing characters that are
// unsafe in filenames with underscores.
// Example: "BRD Document", ".pdf" → BRD_Document.pdf
func Filename(baseName, ext string) string {
	return sanitize(baseName) + ext
}

// Emit writes the artifact into the output directory and returns its path.
// An existing file with the same name is replaced.
func (w *Writer) Emit(a *core.Artifact) (string, error) {
	if a == nil || len(a.Data) == 0 {
		return "", ErrEmptyArtifact
	}

	path := filepath.Join(w.OutputDir, a.Filename)

	tmp, err := os.CreateTemp(w.OutputDir, "."+a.Filename+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(a.Data); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("syncing file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("closing file %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return "", fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return "", fmt.Errorf("renaming into %s: %w", path, err)
	}
	return path, nil
}

// sanitize replaces anything but letters, digits, dash and underscore with
// underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
