// Package export renders a by-categories report into downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

// Renderer writes a report in a single document format
type Renderer interface {
	Render(w io.Writer, report *domain.CategoryReport) error
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(w io.Writer, report *domain.CategoryReport) error

// Render calls f(w, report)
func (f RendererFunc) Render(w io.Writer, report *domain.CategoryReport) error {
	return f(w, report)
}

var renderers = map[domain.ExportFormat]Renderer{
	domain.ExportFormatCSV:  RendererFunc(RenderCSV),
	domain.ExportFormatJSON: RendererFunc(RenderJSON),
	domain.ExportFormatPDF:  RendererFunc(RenderPDF),
	domain.ExportFormatXLSX: RendererFunc(RenderXLSX),
}

// RendererFor returns the renderer for format
func RendererFor(format domain.ExportFormat) (Renderer, error) {
	r, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return r, nil
}

// Bytes renders report into memory
func Bytes(format domain.ExportFormat, report *domain.CategoryReport) ([]byte, error) {
	r, err := RendererFor(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, report); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

const moneyPlaces = 2
