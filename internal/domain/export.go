package domain

import "strings"

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ParseExportFormat normalizes a user supplied format name
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportFormatCSV, ExportFormatJSON, ExportFormatPDF, ExportFormatXLSX:
		return f, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Extension returns the file extension including the dot
func (f ExportFormat) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type of the rendered export
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatCSV:
		return "text/csv"
	case ExportFormatJSON:
		return "application/json"
	case ExportFormatPDF:
		return "application/pdf"
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// ExportResult describes a stored report export
type ExportResult struct {
	Format   ExportFormat `json:"format"`
	Location string       `json:"location"`
	Size     int64        `json:"size"`
}
