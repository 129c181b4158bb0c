package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"logreport/config"
	"logreport/internal/dto"
	"logreport/internal/service"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Renderer writes a finished report to an output stream.
type Renderer interface {
	Render(w io.Writer, report *service.Report) error
}

// NewRenderer returns the renderer configured by cfg.Report.
func NewRenderer(cfg *config.Config) (Renderer, error) {
	return NewRendererFor(cfg, cfg.Report.Output)
}

// NewRendererFor returns the renderer for format, using cfg for table headers
// and colour.
func NewRendererFor(cfg *config.Config, format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatText, "table":
		return &TextRenderer{
			Table: NewTableRenderer(cfg.Report.LevelHeader, cfg.Report.CountHeader),
			Color: strings.ToLower(cfg.Report.Color),
		}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatYAML, "yml":
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// ---------------------------------------------------------------------------
// Text Renderer
// ---------------------------------------------------------------------------

// TextRenderer prints the invalid-level diagnostic, if any, then the table.
// Color is auto, always or never; auto colours only when w is a terminal.
type TextRenderer struct {
	Table *TableRenderer
	Color string
}

func (r *TextRenderer) Render(w io.Writer, report *service.Report) error {
	if report.Filter.Diagnostic != "" {
		if _, err := fmt.Fprintln(w, report.Filter.Diagnostic); err != nil {
			return err
		}
	}

	table := r.Table
	if table.Style == nil && useColor(r.Color, w) {
		styled := *table
		styled.Style = styleLevelCell
		table = &styled
	}
	return table.Render(w, report.Counts, report.Filter.Lines)
}

// ---------------------------------------------------------------------------
// JSON Renderer
// ---------------------------------------------------------------------------

type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, report *service.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewReportResponse(report))
}

// ---------------------------------------------------------------------------
// YAML Renderer
// ---------------------------------------------------------------------------

type YAMLRenderer struct{}

func (r *YAMLRenderer) Render(w io.Writer, report *service.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dto.NewReportResponse(report)); err != nil {
		return err
	}
	return enc.Close()
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		forceColorProfile()
		return true
	case "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}
