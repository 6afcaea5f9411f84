// Export command.
// This is the main command that orchestrates the pipeline:
// ingest → render (paginate | compose) → emit.
//
// It handles flag validation, renderer selection and the --format all mode.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/config"
	"github.com/gaurav-prasanna/brdexport/core/extract"
	"github.com/gaurav-prasanna/brdexport/core/fetch"
	"github.com/gaurav-prasanna/brdexport/core/ingest"
	"github.com/gaurav-prasanna/brdexport/core/normalize"
	"github.com/gaurav-prasanna/brdexport/core/output"
	"github.com/gaurav-prasanna/brdexport/core/render"
)

const formatAll = "all"

// generatedAtLayout is the layout accepted by --generated-at.
const generatedAtLayout = "2006-01-02"

// Flag variables.
var (
	flagFormat      string
	flagAccuracy    float64
	flagOutputDir   string
	flagSample      bool
	flagGeneratedAt string
)

var exportCmd = &cobra.Command{
	Use:   "export [source]",
	Short: "Export a requirements document as PDF, DOCX or JSON",
	Long: `Export loads titled sections from a file or URL and writes BRD_Document.<ext>
in the chosen format.

Sources: .json, .yaml/.yml, .md/.markdown, .html/.htm, or an http(s) URL.

Examples:
  brdexport export brd.json --format pdf
  brdexport export brd.md --format docx --accuracy 91 --output_dir ./out
  brdexport export https://wiki.example.com/brd --format all
  brdexport export --sample --format all --generated-at 2026-10-19`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&flagFormat, "format", string(core.FormatPDF), "Output format: pdf, docx, json or all")
	exportCmd.Flags().Float64Var(&flagAccuracy, "accuracy", -1, "Accuracy percentage for the header (default: from the input, else 0)")
	exportCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	exportCmd.Flags().BoolVar(&flagSample, "sample", false, "Export the built-in sample document instead of a source")
	exportCmd.Flags().StringVar(&flagGeneratedAt, "generated-at", "", "Generation date as YYYY-MM-DD (default: now)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := validateFlags(args); err != nil {
		return err
	}

	renderers, err := selectRenderers(flagFormat, cfg)
	if err != nil {
		return err
	}

	now, err := generatedAt(flagGeneratedAt, time.Now())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	in, source, err := loadInput(ctx, args)
	if err != nil {
		return err
	}

	req := core.NewExportRequest(in.Sections, resolveAccuracy(flagAccuracy, in), now)
	log := logger.With("export_id", uuid.NewString())
	log.Info("export started",
		"source", source,
		"sections", len(req.Sections),
		"accuracy", req.AccuracyLabel(),
	)

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	// Render every format before writing any, so a failure leaves nothing
	// on disk.
	artifacts, err := renderAll(ctx, renderers, req, cfg.Document.BaseName)
	if err != nil {
		log.Error("export failed", "error", err)
		return err
	}

	for _, a := range artifacts {
		path, err := writer.Emit(a)
		if err != nil {
			return err
		}
		log.Info("artifact written", "format", a.Format, "path", path, "bytes", len(a.Data))
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}
	return nil
}

// validateFlags checks that exactly one input is given and that the
// accuracy, if set, is a percentage.
func validateFlags(args []string) error {
	if flagSample && len(args) > 0 {
		return errors.New("--sample and a source argument are mutually exclusive")
	}
	if !flagSample && len(args) == 0 {
		return errors.New("a source is required: a file path, an http(s) URL, or --sample")
	}
	if flagAccuracy != -1 && (flagAccuracy < 0 || flagAccuracy > 100) {
		return fmt.Errorf("--accuracy must be between 0 and 100 (got %g)", flagAccuracy)
	}
	return nil
}

// selectRenderers creates the renderers for a --format value.
func selectRenderers(name string, cfg config.Config) ([]core.Renderer, error) {
	if name == formatAll {
		out := make([]core.Renderer, 0, len(core.Formats))
		for _, f := range core.Formats {
			out = append(out, newRenderer(f, cfg))
		}
		return out, nil
	}

	f, err := core.ParseFormat(name)
	if err != nil {
		return nil, fmt.Errorf("%w (want pdf, docx, json or all)", err)
	}
	return []core.Renderer{newRenderer(f, cfg)}, nil
}

func newRenderer(f core.Format, cfg config.Config) core.Renderer {
	switch f {
	case core.FormatDOCX:
		return render.NewDOCXRenderer(cfg, nil)
	case core.FormatJSON:
		return render.NewJSONRenderer(cfg)
	default:
		return render.NewPDFRenderer(cfg)
	}
}

// loadInput reads the sections from the source argument or the sample.
func loadInput(ctx context.Context, args []string) (*ingest.Input, string, error) {
	if flagSample {
		in, err := ingest.Sample()
		return in, "sample", err
	}

	source := args[0]
	loader := ingest.New(fetch.New(nil), extract.New(), normalize.New())
	in, err := loader.Load(ctx, source)
	if err != nil {
		return nil, source, fmt.Errorf("loading %s: %w", source, err)
	}
	return in, source, nil
}

// resolveAccuracy prefers the flag, then the input's own value.
func resolveAccuracy(flag float64, in *ingest.Input) float64 {
	if flag >= 0 {
		return flag
	}
	if in.Accuracy != nil {
		return *in.Accuracy
	}
	return 0
}

func generatedAt(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(generatedAtLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--generated-at must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// renderAll renders the request once per renderer, concurrently. Each
// render is independent; the first failure cancels the result.
func renderAll(ctx context.Context, renderers []core.Renderer, req core.ExportRequest, baseName string) ([]*core.Artifact, error) {
	artifacts := make([]*core.Artifact, len(renderers))
	g, ctx := errgroup.WithContext(ctx)

	for i, r := range renderers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			data, err := r.Render(req)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", r.Format(), err)
			}
			artifacts[i] = output.NewArtifact(r, data, baseName)
			logger.Debug("rendered", slog.String("format", string(r.Format())), slog.Duration("took", time.Since(start)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}
