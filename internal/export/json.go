package export

import (
	"encoding/json"
	"io"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

// RenderJSON writes the report as indented JSON
func RenderJSON(w io.Writer, report *domain.CategoryReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
